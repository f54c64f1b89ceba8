package main_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"calorie-calculator/internal/config"
	"calorie-calculator/internal/models"
	"calorie-calculator/internal/server"
)

func SetupServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.Access = false
	handler, err := server.NewRouter(cfg)
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return string(b)
}

func TestIntegration_PageFlow(t *testing.T) {
	srv := SetupServer(t)

	resp, err := http.Get(srv.URL + "/?panel=calories")
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if page := readBody(t, resp); !strings.Contains(page, `action="/calories"`) {
		t.Fatal("calorie panel not rendered")
	}

	form := url.Values{
		"sex": {"male"}, "feet": {"5"}, "inches": {"10"},
		"weight": {"75"}, "age": {"30"}, "activity_level": {"1.2"},
	}
	// the client follows the 303 back to the page
	resp, err = http.PostForm(srv.URL+"/calories", form)
	if err != nil {
		t.Fatalf("submit calories: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after redirect, got %d", resp.StatusCode)
	}
	page := readBody(t, resp)
	if !strings.Contains(page, "2060 kcal") || !strings.Contains(page, "Protein (22.5%): 116 g (464 kcal)") {
		t.Fatalf("result missing from page:\n%s", page)
	}

	form.Set("age", "abc")
	for k, v := range form {
		if k != "age" {
			form.Set("last_"+k, v[0])
		}
	}
	form.Set("last_age", "30")
	resp, err = http.PostForm(srv.URL+"/calories", form)
	if err != nil {
		t.Fatalf("resubmit calories: %v", err)
	}
	if page := readBody(t, resp); !strings.Contains(page, "2060 kcal") {
		t.Fatal("failed recalculation should leave the previous result displayed")
	}
}

func TestIntegration_API(t *testing.T) {
	srv := SetupServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/steps", "application/json",
		bytes.NewBufferString(`{"steps":"1000","weight":"70","height":"1.7","pace":"1.34"}`))
	if err != nil {
		t.Fatalf("post steps: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("steps failed: status %d", resp.StatusCode)
	}
	var out models.StepsOutput
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode steps response: %v", err)
	}
	if out.ElapsedMinutes < 8.75 || out.ElapsedMinutes > 8.76 {
		t.Fatalf("unexpected elapsed minutes %v", out.ElapsedMinutes)
	}
}

func TestIntegration_InsufficientInput(t *testing.T) {
	srv := SetupServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/calories", "application/json", bytes.NewBufferString(`{"weight":"75"}`))
	if err != nil {
		t.Fatalf("post calories: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestIntegration_InvalidJSON(t *testing.T) {
	srv := SetupServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/calories", "application/json", bytes.NewBufferString(`{`))
	if err != nil {
		t.Fatalf("post calories: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
