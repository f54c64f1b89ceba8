package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newPages(t *testing.T) *Pages {
	t.Helper()
	p, err := New("NutriBot", "test")
	if err != nil {
		t.Fatalf("failed to create pages: %v", err)
	}
	return p
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return string(b)
}

func get(t *testing.T, h http.HandlerFunc, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h(w, req)
	return w.Result()
}

func postForm(t *testing.T, h http.HandlerFunc, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h(w, req)
	return w.Result()
}

func TestHome_Shell(t *testing.T) {
	resp := get(t, newPages(t).Home(), "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	page := body(t, resp)
	for _, want := range []string{"Calorie Calculator", "Steps2Calories", "Track your steps", "Start Typing..."} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(page, `action="/calories"`) || strings.Contains(page, `action="/steps"`) {
		t.Error("no panel should be open on the bare landing page")
	}
}

func TestHome_SidebarClosed(t *testing.T) {
	page := body(t, get(t, newPages(t).Home(), "/?sidebar=closed"))
	if strings.Contains(page, "Start New Chat") {
		t.Error("sidebar should be hidden")
	}
}

func TestHome_OpenPanelWithQuery(t *testing.T) {
	page := body(t, get(t, newPages(t).Home(), "/?panel=calories&feet=5&inches=10&weight=75&age=30&activity_level=1.2"))
	if !strings.Contains(page, `action="/calories"`) {
		t.Fatal("calorie panel should be open")
	}
	if strings.Contains(page, `action="/steps"`) {
		t.Fatal("steps panel must be closed while calories is open")
	}
	if !strings.Contains(page, "2060 kcal") {
		t.Fatalf("expected result in page:\n%s", page)
	}
	if !strings.Contains(page, `name="last_weight" value="75"`) {
		t.Fatal("expected the last successful fields to be carried")
	}
	if !strings.Contains(page, `value="1.2" selected`) {
		t.Fatal("expected sedentary activity level selected")
	}
}

func TestSubmitCalories_RedirectsOnResult(t *testing.T) {
	form := url.Values{
		"sex": {"male"}, "feet": {"5"}, "inches": {"10"},
		"weight": {"75"}, "age": {"30"}, "activity_level": {"1.2"},
	}
	resp := postForm(t, newPages(t).SubmitCalories(), "/calories", form)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	loc, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		t.Fatalf("bad redirect: %v", err)
	}
	q := loc.Query()
	if q.Get("panel") != "calories" || q.Get("weight") != "75" {
		t.Fatalf("unexpected redirect query: %v", q)
	}
}

func TestSubmitCalories_FailureKeepsLastResult(t *testing.T) {
	form := url.Values{
		"feet": {"5"}, "inches": {"10"}, "weight": {""}, "age": {"30"},
		"last_sex": {"male"}, "last_feet": {"5"}, "last_inches": {"10"},
		"last_weight": {"75"}, "last_age": {"30"}, "last_activity_level": {"1.2"},
	}
	resp := postForm(t, newPages(t).SubmitCalories(), "/calories", form)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	page := body(t, resp)
	if !strings.Contains(page, "2060 kcal") {
		t.Fatal("previous result should still be displayed")
	}
	if !strings.Contains(page, `name="weight" value=""`) {
		t.Fatal("submitted fields should be kept in the form")
	}
}

func TestSubmitCalories_FailureWithoutHistory(t *testing.T) {
	resp := postForm(t, newPages(t).SubmitCalories(), "/calories", url.Values{"feet": {"5"}})
	page := body(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if strings.Contains(page, "Your Daily Calorie Needs") {
		t.Fatal("no result expected")
	}
}

func TestSubmitSteps(t *testing.T) {
	p := newPages(t)
	form := url.Values{"steps": {"1000"}, "weight": {"70"}, "height": {"1.7"}, "pace": {"1.34"}}
	resp := postForm(t, p.SubmitSteps(), "/steps", form)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}

	page := body(t, get(t, p.Home(), resp.Header.Get("Location")))
	for _, want := range []string{"0.63 kcal", "0.00063 kcal", "Taking 1000 steps", "about 9 minutes", "around 4 kcal per hour", `value="1.34" checked`} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}

	form.Set("pace", "1.5")
	resp = postForm(t, p.SubmitSteps(), "/steps", form)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for unknown pace, got %d", resp.StatusCode)
	}
	if strings.Contains(body(t, resp), "Calories burned") {
		t.Fatal("unknown pace must not produce a result")
	}
}

func TestStripPrefix(t *testing.T) {
	v, ok := stripPrefix(url.Values{"last_a": {"1"}, "b": {"2"}}, lastPrefix)
	if !ok || v.Get("a") != "1" || v.Has("b") {
		t.Fatalf("unexpected result: %v ok=%v", v, ok)
	}
	if _, ok := stripPrefix(url.Values{"b": {"2"}}, lastPrefix); ok {
		t.Fatal("expected no prefixed values")
	}
}
