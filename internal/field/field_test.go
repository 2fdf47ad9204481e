package field

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttachmentSizeBytes(t *testing.T) {
	cases := []struct {
		size AttachmentSize
		want int64
	}{
		{OneMb, 1_000_000},
		{ThreeMb, 3_000_000},
		{SevenMb, 7_000_000},
		{TenMb, 10_000_000},
		{TwentyMb, 20_000_000},
		{AttachmentSize("99mb"), 0},
		{AttachmentSize(""), 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.size.Bytes(), "tier %q", tc.size)
	}
}

func TestTypeValid(t *testing.T) {
	for _, ft := range Types() {
		require.True(t, ft.Valid(), "type %q", ft)
	}
	require.False(t, Type("slider").Valid())
	require.False(t, Type("").Valid())
}

func TestUsesAnswerArray(t *testing.T) {
	require.True(t, Checkbox.UsesAnswerArray())
	require.True(t, Table.UsesAnswerArray())
	require.False(t, ShortText.UsesAnswerArray())
	require.False(t, Attachment.UsesAnswerArray())
}

func TestResponseEmpty(t *testing.T) {
	cases := []struct {
		name string
		t    Type
		resp Response
		want bool
	}{
		{"scalar empty", ShortText, Response{}, true},
		{"scalar whitespace", ShortText, Response{Answer: " \t "}, true},
		{"scalar answered", ShortText, Response{Answer: "hi"}, false},
		{"checkbox absent array", Checkbox, Response{}, true},
		{"checkbox null array", Checkbox, Response{AnswerArray: json.RawMessage(`null`)}, true},
		{"checkbox empty array", Checkbox, Response{AnswerArray: json.RawMessage(`[]`)}, true},
		{"checkbox selected", Checkbox, Response{AnswerArray: json.RawMessage(`["a"]`)}, false},
		{"checkbox garbage counts as data", Checkbox, Response{AnswerArray: json.RawMessage(`"x"`)}, false},
		{"table absent", Table, Response{}, true},
		{"table empty rows", Table, Response{AnswerArray: json.RawMessage(`[]`)}, true},
		{"table blank cells", Table, Response{AnswerArray: json.RawMessage(`[["", "  "]]`)}, true},
		{"table filled cell", Table, Response{AnswerArray: json.RawMessage(`[["", "x"]]`)}, false},
		{"attachment none", Attachment, Response{}, true},
		{"attachment filename only", Attachment, Response{Filename: "a.txt"}, false},
		{"attachment content only", Attachment, Response{Content: []byte{1}}, false},
		{"attachment answer only", Attachment, Response{Answer: "a.txt"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.resp.Empty(tc.t))
		})
	}
}

func TestSelectionsAndRowsRejectAbsentArray(t *testing.T) {
	var r Response
	_, err := r.Selections()
	require.Error(t, err)
	_, err = r.Rows()
	require.Error(t, err)

	r.AnswerArray = json.RawMessage(`null`)
	_, err = r.Selections()
	require.Error(t, err)
}

func TestFieldJSONRoundTrip(t *testing.T) {
	raw := `{
		"id": "64a8b9e5",
		"type": "checkbox",
		"title": "Topics of interest",
		"required": true,
		"options": ["a", "b"],
		"others_option": true,
		"checkbox_validation": {"validate_by_value": true, "custom_min": 1}
	}`
	var f Field
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	require.Equal(t, Checkbox, f.Type)
	require.True(t, f.Required)
	require.True(t, f.OthersOption)
	require.NotNil(t, f.Checkbox)
	require.True(t, f.Checkbox.ValidateByValue)
	require.NotNil(t, f.Checkbox.CustomMin)
	require.Equal(t, 1, *f.Checkbox.CustomMin)
	require.Nil(t, f.Checkbox.CustomMax)
	require.Nil(t, f.Table)
}
