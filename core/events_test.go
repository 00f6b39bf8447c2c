package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trafficlens/trafficlens/schema"
)

func eventDataset(rows []schema.Record) *schema.Dataset {
	return &schema.Dataset{
		Columns: schema.ColumnSet{
			schema.ColEventName:  true,
			schema.ColEventCount: true,
		},
		Rows: rows,
	}
}

func TestAnalyzeEvents_UnavailableWithoutEventName(t *testing.T) {
	ds := &schema.Dataset{
		Columns: schema.ColumnSet{schema.ColUsers: true},
		Rows:    []schema.Record{{Users: 10}},
	}
	events := AnalyzeEvents(ds)
	assert.False(t, events.Available)
}

func TestAnalyzeEvents_SummaryAndRanking(t *testing.T) {
	events := AnalyzeEvents(eventDataset([]schema.Record{
		{EventName: "page_view", EventCount: 100},
		{EventName: "purchase", EventCount: 10},
		{EventName: "page_view", EventCount: 50},
		{EventName: "scroll", EventCount: 60},
	}))

	require.True(t, events.Available)
	assert.Equal(t, 220.0, events.Summary.TotalEvents)
	assert.Equal(t, 3, events.Summary.UniqueEventTypes)

	require.Len(t, events.TopEvents, 3)
	assert.Equal(t, "page_view", events.TopEvents[0].Event)
	assert.Equal(t, 150.0, events.TopEvents[0].Count)
	assert.Equal(t, "scroll", events.TopEvents[1].Event)
	assert.Equal(t, "purchase", events.TopEvents[2].Event)
}

func TestAnalyzeEvents_TopTenWithFirstSeenTiebreak(t *testing.T) {
	var rows []schema.Record
	for i := range 12 {
		rows = append(rows, schema.Record{
			EventName:  fmt.Sprintf("event_%02d", i),
			EventCount: 5, // all tied
		})
	}
	events := AnalyzeEvents(eventDataset(rows))

	require.Len(t, events.TopEvents, 10)
	assert.Equal(t, "event_00", events.TopEvents[0].Event)
	assert.Equal(t, "event_09", events.TopEvents[9].Event)
}

func TestAnalyzeEvents_ConversionEvents(t *testing.T) {
	events := AnalyzeEvents(eventDataset([]schema.Record{
		{EventName: "page_view", EventCount: 1},
		{EventName: "newsletter_signup", EventCount: 1},
		{EventName: "form_submit", EventCount: 1},
		{EventName: "generate_lead", EventCount: 1},
	}))
	assert.Equal(t, []string{"newsletter_signup", "form_submit", "generate_lead"}, events.ConversionEvents)
}

func TestAnalyzeEvents_Categories(t *testing.T) {
	events := AnalyzeEvents(eventDataset([]schema.Record{
		{EventName: "page_view", EventCount: 1},
		{EventName: "video_play", EventCount: 1},
		{EventName: "purchase", EventCount: 1},
		{EventName: "mystery_event", EventCount: 1},
	}))

	assert.Equal(t, []string{"page_view"}, events.Categories.Navigation)
	assert.Equal(t, []string{"video_play"}, events.Categories.Interaction)
	assert.Equal(t, []string{"purchase"}, events.Categories.Conversion)
}

func TestEventCategory_FirstMatchWins(t *testing.T) {
	// "click_purchase" matches navigation ("click") before conversion.
	assert.Equal(t, "navigation", EventCategory("click_purchase"))
	assert.Equal(t, "conversion", EventCategory("sign_up"))
	assert.Empty(t, EventCategory("heartbeat"))
}

func TestIsConversionEvent(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"purchase", true},
		{"PURCHASE_COMPLETED", true},
		{"newsletter_signup", true},
		{"form_submit", true},
		{"generate_lead", true},
		{"page_view", false},
		{"scroll", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsConversionEvent(tc.name), tc.name)
	}
}
