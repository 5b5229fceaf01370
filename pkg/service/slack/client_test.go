package slack_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hotelops-lab/upkeep/pkg/domain/interfaces"
	"github.com/hotelops-lab/upkeep/pkg/domain/model"
	"github.com/hotelops-lab/upkeep/pkg/service/slack"
)

func TestNew(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		_, err := slack.New("", "C0123456789")
		gt.Error(t, err)
	})

	t.Run("requires a channel", func(t *testing.T) {
		_, err := slack.New("xoxb-test", "")
		gt.Error(t, err)
	})

	t.Run("builds a service", func(t *testing.T) {
		svc, err := slack.New("xoxb-test", "C0123456789")
		gt.NoError(t, err).Required()
		gt.Value(t, svc).NotNil()
	})

	t.Run("usable as a lifecycle notifier", func(t *testing.T) {
		svc, err := slack.New("xoxb-test", "C0123456789")
		gt.NoError(t, err).Required()

		var notifier interfaces.Notifier = svc
		gt.Value(t, notifier).NotNil()
	})
}

func TestEventHeadline(t *testing.T) {
	headline := slack.EventHeadline(&model.Event{
		Kind:  model.EventIncidentOpened,
		Title: "Compressor rattling",
	})
	gt.B(t, strings.Contains(headline, "Compressor rattling")).True()
	gt.B(t, strings.Contains(headline, "Incident reported")).True()

	headline = slack.EventHeadline(&model.Event{
		Kind:          model.EventEquipmentStatusChanged,
		EquipmentName: "Rooftop HVAC Unit 3",
		Detail:        "FUNCTIONAL",
	})
	gt.B(t, strings.Contains(headline, "Rooftop HVAC Unit 3")).True()
	gt.B(t, strings.Contains(headline, "FUNCTIONAL")).True()

	headline = slack.EventHeadline(&model.Event{Kind: model.EventKind("unknown")})
	gt.B(t, strings.Contains(headline, "unknown")).True()
}
