package generator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskType(t *testing.T) {
	for _, task := range TaskTypes() {
		got, err := ParseTaskType(string(task))
		require.NoError(t, err)
		assert.Equal(t, task, got)
	}

	got, err := ParseTaskType("  Code ")
	require.NoError(t, err)
	assert.Equal(t, TaskCode, got)

	_, err = ParseTaskType("poem")
	assert.True(t, errors.Is(err, ErrUnknownTaskType), "err=%v", err)

	_, err = ParseTaskType("")
	assert.ErrorIs(t, err, ErrUnknownTaskType)
}

func TestTaskType_UnmarshalRejectsUnknown(t *testing.T) {
	var r Result
	err := json.Unmarshal([]byte(`{"id":"1","type":"poem","prompt":"p","content":"c"}`), &r)
	assert.ErrorIs(t, err, ErrUnknownTaskType)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","type":"chart","prompt":"p","content":"c"}`), &r))
	assert.Equal(t, TaskChart, r.Type)
}

func TestCatalog_CoversEveryType(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, len(TaskTypes()))
	for i, task := range TaskTypes() {
		assert.Equal(t, task, cat[i].Type)
		assert.NotEmpty(t, cat[i].Label)
		assert.NotEmpty(t, cat[i].Placeholder)
	}
}

func TestTaskTypes_ReturnsCopy(t *testing.T) {
	a := TaskTypes()
	a[0] = "changed"
	assert.Equal(t, TaskDesign, TaskTypes()[0])
}
