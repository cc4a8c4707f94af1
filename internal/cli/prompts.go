package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/dyike/symplacheck/internal/models"
)

var eventIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// PromptForToken asks for the API access token with masked input.
func PromptForToken() (string, error) {
	var token string
	prompt := &survey.Password{
		Message: "API access token:",
		Help:    "Your Sympla API access token. It is kept in memory for this session only.",
	}

	err := survey.AskOne(prompt, &token, survey.WithValidator(func(val interface{}) error {
		if strings.TrimSpace(val.(string)) == "" {
			return fmt.Errorf("token cannot be empty")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(token), nil
}

// PromptForVersion asks which API version namespace to use.
func PromptForVersion(current models.APIVersion) (models.APIVersion, error) {
	options := make([]string, len(models.APIVersions))
	for i, v := range models.APIVersions {
		options[i] = string(v)
	}

	prompt := &survey.Select{
		Message: "API version:",
		Options: options,
		Help:    "The Sympla public API version to interact with.",
	}
	if current != "" {
		prompt.Default = string(current)
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return models.APIVersion(selected), nil
}

// PromptForEventID asks for the event to query orders or participants for.
func PromptForEventID() (string, error) {
	var eventID string
	prompt := &survey.Input{
		Message: "Event ID:",
		Help:    "The ID of the event to check orders or participants for.",
	}

	err := survey.AskOne(prompt, &eventID, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		if str == "" {
			return fmt.Errorf("event ID cannot be empty")
		}
		if !eventIDPattern.MatchString(str) {
			return fmt.Errorf("invalid event ID (use letters, numbers, hyphens, and underscores only)")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(eventID), nil
}

// Dashboard menu actions.
const (
	actionFetchEvents       = "📥 Fetch events"
	actionShowEvents        = "📋 Show events"
	actionFetchOrders       = "📦 Fetch event orders"
	actionFetchParticipants = "👥 Fetch event participants"
	actionShowResults       = "📊 Show results"
	actionShowCharts        = "📈 Show charts"
	actionExportCSV         = "💾 Export CSV files"
	actionClearResults      = "🧹 Clear results"
	actionChangeToken       = "🔑 Change API token"
	actionChangeVersion     = "🔀 Change API version"
	actionExit              = "👋 Exit"
)

// PromptForAction shows the main dashboard menu.
func PromptForAction() (string, error) {
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: []string{
			actionFetchEvents,
			actionShowEvents,
			actionFetchOrders,
			actionFetchParticipants,
			actionShowResults,
			actionShowCharts,
			actionExportCSV,
			actionClearResults,
			actionChangeToken,
			actionChangeVersion,
			actionExit,
		},
		PageSize: 11,
	}

	var action string
	err := survey.AskOne(prompt, &action)
	return action, err
}

// PromptForConfirm asks a yes/no question, defaulting to no.
func PromptForConfirm(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	err := survey.AskOne(prompt, &confirmed)
	return confirmed, err
}
