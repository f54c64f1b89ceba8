package panel

import (
	"calorie-calculator/internal/forms"
	"calorie-calculator/internal/models"
)

const (
	CaloriesPanel = "calories"
	StepsPanel    = "steps"
)

var Features = []string{
	"Calculate daily calories",
	"Track your steps",
	"Monitor progress",
	"Get personalized insights",
}

// Shell is the landing page: a sidebar with the calculator buttons, the
// chat area and at most one open calculator panel. The chat draft is
// display state only and is never sent anywhere.
type Shell struct {
	Calories    *Panel[forms.CalorieForm, models.CalorieOutput]
	Steps       *Panel[forms.StepsForm, models.StepsOutput]
	SidebarOpen bool
	Draft       string
}

func NewShell() *Shell {
	return &Shell{
		Calories:    New[forms.CalorieForm, models.CalorieOutput](CaloriesPanel, forms.NewCalorieForm()),
		Steps:       New[forms.StepsForm, models.StepsOutput](StepsPanel, forms.NewStepsForm()),
		SidebarOpen: true,
	}
}

// Open shows the named panel and closes the other one.
func (s *Shell) Open(name string) bool {
	switch name {
	case CaloriesPanel:
		s.Steps.Close()
		s.Calories.Open()
	case StepsPanel:
		s.Calories.Close()
		s.Steps.Open()
	default:
		return false
	}
	return true
}

func (s *Shell) CloseAll() {
	s.Calories.Close()
	s.Steps.Close()
}

// Active returns the name of the open panel or "".
func (s *Shell) Active() string {
	switch {
	case s.Calories.IsOpen():
		return CaloriesPanel
	case s.Steps.IsOpen():
		return StepsPanel
	}
	return ""
}

func (s *Shell) ToggleSidebar() { s.SidebarOpen = !s.SidebarOpen }

// Set edits a field of the open panel.
func (s *Shell) Set(field, value string) (bool, error) {
	switch s.Active() {
	case CaloriesPanel:
		return true, s.Calories.Set(field, value)
	case StepsPanel:
		return true, s.Steps.Set(field, value)
	}
	return false, nil
}

// Submit recalculates the open panel. opened is false when no panel is open.
func (s *Shell) Submit() (opened, ok bool) {
	switch s.Active() {
	case CaloriesPanel:
		return true, s.Calories.Submit()
	case StepsPanel:
		return true, s.Steps.Submit()
	}
	return false, false
}
