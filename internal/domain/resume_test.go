package domain_test

import (
	"testing"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewEmptyResume(t *testing.T) {
	doc := domain.NewEmptyResume()

	assert.NotNil(t, doc.Work)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Projects)
	assert.Empty(t, doc.Work)
	assert.Empty(t, doc.Basics.Name)
	assert.Equal(t, domain.SchemaVersion, doc.Meta.Version)
	assert.WithinDuration(t, time.Now().UTC(), doc.Meta.LastModified, time.Minute)
}

func TestTouch(t *testing.T) {
	doc := domain.NewEmptyResume()
	doc.Basics.Name = "Jane Doe"
	doc.Work = []domain.Work{{Name: "Acme", Position: "Engineer"}}
	doc.Meta.LastModified = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	touched := doc.Touch()

	assert.True(t, !touched.Meta.LastModified.Before(doc.Meta.LastModified))
	assert.Equal(t, doc.Basics, touched.Basics)
	assert.Equal(t, doc.Work, touched.Work)
	// The receiver is untouched
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), doc.Meta.LastModified)
}

func TestMergeResume(t *testing.T) {
	base := domain.NewEmptyResume()
	base.Basics.Name = "Jane Doe"
	base.Work = []domain.Work{{Name: "Acme"}}
	base.Meta.LastModified = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Empty patch only refreshes the timestamp", func(t *testing.T) {
		merged := domain.MergeResume(base, domain.ResumePatch{})

		assert.Equal(t, base.Basics, merged.Basics)
		assert.Equal(t, base.Work, merged.Work)
		assert.True(t, merged.Meta.LastModified.After(base.Meta.LastModified))
	})

	t.Run("Present fields replace base fields wholesale", func(t *testing.T) {
		newWork := []domain.Work{{Name: "Globex"}, {Name: "Initech"}}
		merged := domain.MergeResume(base, domain.ResumePatch{Work: &newWork})

		assert.Equal(t, newWork, merged.Work)
		// Absent fields are retained
		assert.Equal(t, "Jane Doe", merged.Basics.Name)
	})

	t.Run("Explicit empty slice clears the section", func(t *testing.T) {
		empty := []domain.Work{}
		merged := domain.MergeResume(base, domain.ResumePatch{Work: &empty})
		assert.Empty(t, merged.Work)
	})
}

func TestValidShape(t *testing.T) {
	assert.False(t, domain.ValidShape(nil))
	assert.False(t, domain.ValidShape(map[string]any{}))
	assert.False(t, domain.ValidShape(map[string]any{"foo": 1}))
	assert.True(t, domain.ValidShape(map[string]any{"basics": map[string]any{"name": "Jane"}}))
	assert.True(t, domain.ValidShape(map[string]any{"work": []any{}}))
	assert.True(t, domain.ValidShape(map[string]any{"skills": []any{}, "foo": 1}))
}

func TestSubstantiallyComplete(t *testing.T) {
	doc := domain.NewEmptyResume()
	assert.False(t, doc.SubstantiallyComplete())

	doc.Basics.Name = "Jane Doe"
	assert.False(t, doc.SubstantiallyComplete(), "identity alone is not enough")

	doc.Work = append(doc.Work, domain.Work{Name: "Acme"})
	assert.True(t, doc.SubstantiallyComplete())

	t.Run("Email counts as identity", func(t *testing.T) {
		d := domain.NewEmptyResume()
		d.Basics.Email = "jane@example.com"
		d.Skills = []domain.Skill{{Name: "Go"}}
		assert.True(t, d.SubstantiallyComplete())
	})

	t.Run("Content alone is not enough", func(t *testing.T) {
		d := domain.NewEmptyResume()
		d.Education = []domain.Education{{Institution: "MIT"}}
		assert.False(t, d.SubstantiallyComplete())
	})
}

func TestSkillNames(t *testing.T) {
	doc := domain.NewEmptyResume()
	doc.Skills = []domain.Skill{{Name: "Go"}, {Name: ""}, {Name: "SQL"}}
	assert.Equal(t, []string{"Go", "SQL"}, doc.SkillNames())
}
