package protocol

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteModuleListParsesAsJSONWithEventKey(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModuleList(&buf, "arith_tests"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "module_list", decoded["event"])
	assert.Equal(t, "arith_tests", decoded["name"])
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}

func TestWriteTestCaseEndIncludesOrderedFailures(t *testing.T) {
	var buf bytes.Buffer
	failures := []Failure{
		{File: "t.go", Line: 10, AssertMethod: "SCU_ASSERT_INT_EQUAL", Values: []FailureValue{
			{Name: "1", Value: "1 (0x1)"},
			{Name: "2", Value: "2 (0x2)"},
		}},
	}
	require.NoError(t, WriteTestCaseEnd(&buf, 0, false, 1, 0.001, 0.0005, failures))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "testcase_end", decoded["event"])
	assert.Equal(t, false, decoded["success"])
	fs := decoded["failures"].([]any)
	require.Len(t, fs, 1)
	f0 := fs[0].(map[string]any)
	assert.Equal(t, "SCU_ASSERT_INT_EQUAL", f0["assert_method"])
	values := f0["assert_method_values"].([]any)
	require.Len(t, values, 2)
	assert.Equal(t, "1", values[0].(map[string]any)["name"])
	assert.Equal(t, "1 (0x1)", values[0].(map[string]any)["value"])
}

func TestWriteTestCaseErrorSetsCrashTrue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTestCaseError(&buf, "fatal assertion from wrong thread", "t.go", 42))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "testcase_error", decoded["event"])
	assert.Equal(t, true, decoded["crash"])
	assert.Equal(t, float64(42), decoded["line"])
}

func TestWriteTestCaseListEmptyTagsProducesEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTestCaseList(&buf, 7, "ok", "ok desc", nil))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	tags := decoded["tags"].([]any)
	assert.Len(t, tags, 0)
}
