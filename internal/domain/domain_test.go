package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupResult_ExactlyOneVariant(t *testing.T) {
	found := FoundResult(&PropertyRecord{Address: "1 Main St"})
	assert.True(t, found.Found())
	assert.False(t, found.IsError())
	assert.Equal(t, OutcomeFound, found.Outcome())

	miss := NotFoundResult()
	assert.False(t, miss.Found())
	require.True(t, miss.IsError())
	assert.Nil(t, miss.Property)
	assert.Equal(t, NotFoundMessage, miss.Err.Message)
	assert.Equal(t, OutcomeNotFound, miss.Outcome())
}

func TestFoundResult_NilRecordIsNotFound(t *testing.T) {
	r := FoundResult(nil)
	assert.True(t, r.IsError())
	assert.Nil(t, r.Property)
}

func TestLookupResult_NilIsNeither(t *testing.T) {
	var r *LookupResult
	assert.False(t, r.Found())
	assert.False(t, r.IsError())
	assert.Equal(t, OutcomeNone, r.Outcome())
}

func TestPropertyRecord_CloneIsDeep(t *testing.T) {
	orig := &PropertyRecord{
		Address: "1 Main St",
		ZoningDetails: ZoningNarrative{Permits: PermitPlan{
			Constraints:     []string{"a"},
			Recommendations: []string{"b"},
		}},
	}
	c := orig.Clone()
	c.ZoningDetails.Permits.Constraints[0] = "changed"
	c.Address = "other"

	assert.Equal(t, "a", orig.ZoningDetails.Permits.Constraints[0])
	assert.Equal(t, "1 Main St", orig.Address)
	assert.Nil(t, (*PropertyRecord)(nil).Clone())
}

func TestTab_Cycling(t *testing.T) {
	assert.Equal(t, TabSummary, TabChat.Next())
	assert.Equal(t, TabTasks, TabSummary.Next())
	assert.Equal(t, TabChat, TabTasks.Next())
	assert.Equal(t, TabTasks, TabChat.Prev())
	assert.Equal(t, TabChat, Tab("bogus").Next())
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab(" Summary ")
	require.NoError(t, err)
	assert.Equal(t, TabSummary, tab)

	_, err = ParseTab("map")
	assert.Error(t, err)
}

func TestTab_Label(t *testing.T) {
	assert.Equal(t, "Chat", TabChat.Label())
	assert.Equal(t, "Tasks", TabTasks.Label())
}
