package application

import (
	"fmt"
	"slices"
	"strings"

	"starfolio/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateView parses a view identifier supplied from outside the app.
// An empty value selects the default view.
func ValidateView(fieldName, value string) (domain.ViewID, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return domain.DefaultView, nil
	}
	view, ok := domain.ParseViewID(value)
	if !ok {
		return "", &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown view %q (want one of %s)", value, joinViews()),
			Kind:    ErrUnknownView,
		}
	}
	return view, nil
}

// ValidateTab checks a writings tab. An empty value selects the default tab.
func ValidateTab(fieldName, value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return DefaultTab, nil
	}
	if !slices.Contains(Tabs(), value) {
		return "", &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown tab %q (want %s)", value, strings.Join(Tabs(), " or ")),
			Kind:    ErrUnknownTab,
		}
	}
	return value, nil
}

func joinViews() string {
	views := domain.AllViews()
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
