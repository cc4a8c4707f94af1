package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dyike/symplacheck/internal/config"
	"github.com/dyike/symplacheck/internal/display"
	"github.com/dyike/symplacheck/internal/export"
	"github.com/dyike/symplacheck/internal/models"
	"github.com/dyike/symplacheck/internal/session"
	"github.com/dyike/symplacheck/internal/sympla"
)

// Dashboard drives one interactive session: prompts for actions, calls the
// API client, and renders session state. State is the only data carried
// across actions; every failed action leaves it untouched.
type Dashboard struct {
	config   *config.Config
	state    *session.State
	client   *sympla.Client
	exporter *export.Writer
	logger   *zap.Logger
}

// NewDashboard wires a dashboard from the configuration.
func NewDashboard(cfg *config.Config, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		config:   cfg,
		state:    session.New(),
		client:   sympla.NewClient(cfg, logger),
		exporter: export.NewWriter(cfg.ExportDir),
		logger:   logger,
	}
}

// Run starts the interactive session and blocks until the user exits.
func (d *Dashboard) Run(ctx context.Context) error {
	showWelcome()

	if err := d.setupCredentials(); err != nil {
		return err
	}

	for {
		fmt.Println()
		action, err := PromptForAction()
		if err != nil {
			// survey returns an error when the user interrupts; treat it
			// as an exit, not a failure.
			return nil
		}

		switch action {
		case actionFetchEvents:
			d.fetchEvents(ctx)
		case actionShowEvents:
			display.RenderEvents(d.state.Events)
		case actionFetchOrders:
			d.fetchCollection(ctx, models.QueryOrders)
		case actionFetchParticipants:
			d.fetchCollection(ctx, models.QueryParticipants)
		case actionShowResults:
			d.showResults()
		case actionShowCharts:
			d.showCharts()
		case actionExportCSV:
			d.exportCSV()
		case actionClearResults:
			d.clearResults()
		case actionChangeToken:
			d.changeToken()
		case actionChangeVersion:
			d.changeVersion()
		case actionExit:
			fmt.Println("👋 Thank you for using symplacheck!")
			return nil
		}
	}
}

func showWelcome() {
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║              🔍 symplacheck                       ║")
	fmt.Println("║        Sympla API checker and reporter            ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()
}

// setupCredentials collects the initial token and version. Prefilled
// values from the environment are kept unless absent.
func (d *Dashboard) setupCredentials() error {
	if d.config.Token != "" {
		d.state.OnTokenChanged(d.config.Token)
	} else {
		token, err := PromptForToken()
		if err != nil {
			return err
		}
		d.state.OnTokenChanged(token)
	}

	version := models.APIVersion(d.config.APIVersion)
	if version != models.APIVersionV3 && version != models.APIVersionV5 {
		var err error
		version, err = PromptForVersion("")
		if err != nil {
			return err
		}
	}
	d.state.OnVersionChanged(version)

	display.Info(fmt.Sprintf("Using API version %s", d.state.Creds.Version))
	return nil
}

func (d *Dashboard) fetchEvents(ctx context.Context) {
	display.Info("Fetching events...")

	events, err := d.client.FetchEvents(ctx, d.state.Creds)
	if err != nil {
		d.reportError(err)
		return
	}

	if events.Empty() {
		display.Warning("No events found for the selected API version.")
		return
	}

	d.state.SetEvents(events)
	display.Success(fmt.Sprintf("Fetched %d events.", events.Len()))
	display.RenderEvents(d.state.Events)
}

func (d *Dashboard) fetchCollection(ctx context.Context, query models.QueryType) {
	eventID, err := PromptForEventID()
	if err != nil {
		return
	}

	display.Info(fmt.Sprintf("Checking event %s...", query))

	var result *models.FetchResult
	switch query {
	case models.QueryOrders:
		result, err = d.client.FetchOrders(ctx, d.state.Creds, eventID)
	case models.QueryParticipants:
		result, err = d.client.FetchParticipants(ctx, d.state.Creds, eventID)
	}
	if err != nil {
		d.reportError(err)
		return
	}

	d.state.AppendResult(*result)
	display.Success(fmt.Sprintf("%s for event %s retrieved: %d records (of %d possible), call %.2fs.",
		query.DisplayName(), eventID, result.Records.Len(), result.TotalPossible, result.CallLatency.Seconds()))
}

func (d *Dashboard) showResults() {
	if len(d.state.Results) == 0 {
		display.Info("No results to display. Fetch event orders or participants first.")
		return
	}

	for i, result := range d.state.Results {
		display.RenderResult(i+1, result)
	}
	display.RenderAggregate(models.Aggregate(d.state.Results))
}

func (d *Dashboard) showCharts() {
	if len(d.state.Results) == 0 {
		display.Info("No results to chart. Fetch event orders or participants first.")
		return
	}
	display.RenderCharts(d.state.Results)
}

// exportCSV writes every available export: the events table, one file per
// fetch result, and the combined summary.
func (d *Dashboard) exportCSV() {
	wrote := 0

	if !d.state.Events.Empty() {
		path, err := d.exporter.WriteTable(export.EventsFilename, d.state.Events)
		if err != nil {
			display.Error(err)
			return
		}
		display.Success("Events written to " + path)
		wrote++
	}

	for _, result := range d.state.Results {
		path, err := d.exporter.WriteTable(export.ResultFilename(result), result.Records)
		if err != nil {
			display.Error(err)
			return
		}
		display.Success(fmt.Sprintf("%s for event %s written to %s", result.Type.DisplayName(), result.EventID, path))
		wrote++
	}

	if len(d.state.Results) > 0 {
		path, err := d.exporter.WriteTable(export.SummaryFilename, models.SummaryTable(d.state.Results))
		if err != nil {
			display.Error(err)
			return
		}
		display.Success("Summary written to " + path)
		wrote++
	}

	if wrote == 0 {
		display.Info("Nothing to export yet. Fetch events or results first.")
	}
}

func (d *Dashboard) clearResults() {
	if len(d.state.Results) == 0 {
		display.Info("No results to clear.")
		return
	}

	confirmed, err := PromptForConfirm(fmt.Sprintf("Clear all %d results?", len(d.state.Results)))
	if err != nil || !confirmed {
		return
	}

	d.state.ClearResults()
	display.Success("Results cleared.")
}

func (d *Dashboard) changeToken() {
	token, err := PromptForToken()
	if err != nil {
		return
	}

	if token == d.state.Creds.Token {
		display.Info("Token unchanged.")
		return
	}

	d.state.OnTokenChanged(token)
	display.Info("Token updated; cached events and results were cleared.")
}

func (d *Dashboard) changeVersion() {
	version, err := PromptForVersion(d.state.Creds.Version)
	if err != nil {
		return
	}

	if version == d.state.Creds.Version {
		display.Info("API version unchanged.")
		return
	}

	d.state.OnVersionChanged(version)
	display.Info(fmt.Sprintf("API version set to %s; cached events were cleared.", version))
}

// reportError maps the client error taxonomy to user-facing messages. No
// error is fatal to the session.
func (d *Dashboard) reportError(err error) {
	var upstream *sympla.UpstreamError
	var transport *sympla.TransportError

	switch {
	case errors.Is(err, sympla.ErrMissingInput):
		display.Errorf("Please provide both an API token and an API version.")
	case errors.Is(err, sympla.ErrUnauthorized):
		display.Errorf("Invalid or expired token.")
	case errors.As(err, &upstream):
		display.Errorf("Error %d: unable to fetch data from the API.", upstream.Status)
	case errors.As(err, &transport):
		display.Error(transport)
	default:
		display.Error(err)
	}
}
