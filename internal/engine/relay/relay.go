// Package relay turns Alertmanager alert groups into Discord messages.
package relay

import (
	"fmt"

	"github.com/alertcord/alertcord/internal/core/domain"
)

// statusOrder fixes the delivery order when a group mixes firing and
// resolved alerts.
var statusOrder = []domain.Status{domain.StatusFiring, domain.StatusResolved}

// Delivery is one message ready to post, tagged with the status partition it
// was built from so suppression can key on it.
type Delivery struct {
	Status  domain.Status
	Alerts  []domain.Alert
	Message domain.Message
}

// Build returns one delivery per alert status present in the group.
//
// Each delivery carries a single message: the group's common summary as
// content (only when the group has annotations) and one embed per 25 alerts,
// honoring Discord's field limit.
func Build(group *domain.Group) []Delivery {
	summary, hasSummary := group.Summary()
	name := group.Name()
	partitions := group.ByStatus()

	var deliveries []Delivery
	for _, status := range statusOrder {
		alerts := partitions[status]
		if len(alerts) == 0 {
			continue
		}

		title := fmt.Sprintf("[%s:%d] %s", status.Title(), len(alerts), name)
		fields := make([]domain.EmbedField, 0, len(alerts))
		for _, alert := range alerts {
			fields = append(fields, domain.EmbedField{
				Name:  fmt.Sprintf("[%s]: %s on %s", status.Title(), alert.Name(), alert.Instance()),
				Value: alert.Severity() + " " + alert.Job() + " " + alert.Summary(),
			})
		}

		msg := domain.Message{
			Embeds: buildEmbeds(title, summary, domain.ColorFor(status), fields),
		}
		if hasSummary {
			msg.Content = summary
		}

		deliveries = append(deliveries, Delivery{
			Status:  status,
			Alerts:  alerts,
			Message: msg,
		})
	}

	return deliveries
}

// buildEmbeds splits fields across embeds of at most domain.MaxEmbedFields.
// Continuation embeds repeat the title but not the description.
func buildEmbeds(title, description string, color domain.Color, fields []domain.EmbedField) []domain.Embed {
	var embeds []domain.Embed

	for start := 0; start < len(fields); start += domain.MaxEmbedFields {
		end := min(start+domain.MaxEmbedFields, len(fields))

		embed := domain.Embed{
			Title:  title,
			Color:  color,
			Fields: fields[start:end],
		}
		if start == 0 {
			embed.Description = description
		}
		embeds = append(embeds, embed)
	}

	return embeds
}
