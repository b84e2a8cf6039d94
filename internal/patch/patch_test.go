package patch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Name      string
	Model     string
	Battery   int
	StartedAt *time.Time
}

type recordUpdate struct {
	Name      *string
	Model     *string
	Battery   *int
	StartedAt *time.Time
}

func (u recordUpdate) fields(r *record) []Field {
	return []Field{
		NonEmpty("name", u.Name, &r.Name),
		Present("model", u.Model, &r.Model),
		Present("battery", u.Battery, &r.Battery),
		PresentPtr("started_at", u.StartedAt, &r.StartedAt),
	}
}

func ptr[V any](v V) *V { return &v }

func TestApply_EmptyPayloadLeavesRecordUnchanged(t *testing.T) {
	started := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	r := record{Name: "D1", Model: "M1", Battery: 80, StartedAt: &started}
	before := r

	changed := Apply(recordUpdate{}.fields(&r)...)

	assert.Empty(t, changed)
	assert.Equal(t, before, r)
}

func TestApply_EmptyNameIsSkipped(t *testing.T) {
	r := record{Name: "D1", Model: "M1"}

	changed := Apply(recordUpdate{Name: ptr("")}.fields(&r)...)

	assert.Empty(t, changed)
	assert.Equal(t, "D1", r.Name)
}

func TestApply_FalsyValuesOverwritePresentFields(t *testing.T) {
	r := record{Name: "D1", Model: "M1", Battery: 80}

	changed := Apply(recordUpdate{Model: ptr(""), Battery: ptr(0)}.fields(&r)...)

	assert.Equal(t, []string{"model", "battery"}, changed)
	assert.Equal(t, "", r.Model)
	assert.Equal(t, 0, r.Battery)
	assert.Equal(t, "D1", r.Name)
}

func TestApply_PresentPtrCopiesValue(t *testing.T) {
	r := record{}
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	upd := recordUpdate{StartedAt: &started}

	changed := Apply(upd.fields(&r)...)

	assert.Equal(t, []string{"started_at"}, changed)
	if assert.NotNil(t, r.StartedAt) {
		assert.True(t, started.Equal(*r.StartedAt))
	}
	// цель не должна разделять память с запросом
	started = started.Add(time.Hour)
	assert.NotEqual(t, started, *r.StartedAt)
}

func TestApply_NonEmptyNameOverwrites(t *testing.T) {
	r := record{Name: "D1"}

	changed := Apply(recordUpdate{Name: ptr("D2")}.fields(&r)...)

	assert.Equal(t, []string{"name"}, changed)
	assert.Equal(t, "D2", r.Name)
}
