package aifill_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cattery/internal/aifill"
)

const scenarioAOutput = `{"name":null,"breed":"短毛金点弟弟","storeName":"山东店","birthday":"2025-06-08","price":3000,"description":"驱虫疫苗齐全 眼睛大，体格壮，会趴肩膀，喜欢贴人睡觉 在售 现猫随时可接","catcafeStatus":"resting","visible":true}`

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestNormalize_ScenarioA(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow)

	out, err := n.Normalize(scenarioAOutput)

	require.NoError(t, err)
	assert.Nil(t, out.Name)
	assert.Equal(t, "短毛金点弟弟", *out.Breed)
	assert.Equal(t, "山东店", *out.StoreName)
	assert.Equal(t, "2025-06-08", *out.Birthday)
	assert.Equal(t, 3000.0, *out.Price)
	assert.Equal(t, "resting", *out.CatcafeStatus)
	assert.True(t, *out.Visible)
	assert.Empty(t, out.Warnings)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow)

	first, err := n.Normalize(scenarioAOutput)
	require.NoError(t, err)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := n.Normalize(string(encoded))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalize_Birthday(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		want     string
		warns    bool
	}{
		{name: "iso untouched", birthday: "2025-06-08", want: "2025-06-08"},
		{name: "years", birthday: "3岁", want: "2021-06-15"},
		{name: "months with 个", birthday: "8个月", want: "2023-10-15"},
		{name: "months bare", birthday: "4月", want: "2024-02-15"},
		{name: "slash date", birthday: "2025/6/8", want: "2025-06-08"},
		{name: "dot date", birthday: "2025.6.8", want: "2025-06-08"},
		{name: "chinese date", birthday: "2025年6月8日", want: "2025-06-08"},
		{name: "year and month", birthday: "2023年8月", want: "2023-08-01"},
		{name: "impossible date", birthday: "2025/2/30", want: "2024-06-15", warns: true},
		{name: "unrecognized", birthday: "去年春天", want: "2024-06-15", warns: true},
		{name: "absurd age in years", birthday: "100000岁", want: "2024-06-15", warns: true},
		{name: "absurd age in months", birthday: "99999999个月", want: "2024-06-15", warns: true},
		{name: "oldest accepted age", birthday: "100岁", want: "1924-06-15"},
	}

	n := aifill.NewNormalizer(fixedNow)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(map[string]string{"birthday": tt.birthday})
			require.NoError(t, err)

			out, err := n.Normalize(string(raw))

			require.NoError(t, err)
			require.NotNil(t, out.Birthday)
			assert.Equal(t, tt.want, *out.Birthday)
			if tt.warns {
				require.Len(t, out.Warnings, 1)
				assert.Contains(t, out.Warnings[0], "defaulted to today")
			} else {
				assert.Empty(t, out.Warnings)
			}
		})
	}
}

func TestNormalize_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{not json"},
		{name: "json array", raw: `["a"]`},
		{name: "json null", raw: "null"},
		{name: "name is a number", raw: `{"name":42}`},
		{name: "visible is an object", raw: `{"visible":{"x":1}}`},
		{name: "price is a bool", raw: `{"price":true}`},
	}

	n := aifill.NewNormalizer(fixedNow)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := n.Normalize(tt.raw)

			assert.Nil(t, out)
			var mErr *aifill.MalformedOutputError
			require.True(t, errors.As(err, &mErr))
			assert.Equal(t, aifill.KindMalformedOutput, aifill.KindOf(err))
			assert.Contains(t, err.Error(), "malformed JSON")
		})
	}
}

func TestNormalize_CodeFence(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow)

	out, err := n.Normalize("```json\n{\"name\":\"团子\"}\n```")

	require.NoError(t, err)
	assert.Equal(t, "团子", *out.Name)
}

func TestNormalize_SnakeCaseKeys(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow)

	out, err := n.Normalize(`{"store_name":"苏州店","catcafe_status":"working"}`)

	require.NoError(t, err)
	assert.Equal(t, "苏州店", *out.StoreName)
	assert.Equal(t, "working", *out.CatcafeStatus)
}

func TestNormalize_NullAliasFallsThrough(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow)

	out, err := n.Normalize(`{"storeName":null,"store_name":"苏州店","catcafeStatus":null,"status":"working"}`)

	require.NoError(t, err)
	require.NotNil(t, out.StoreName)
	assert.Equal(t, "苏州店", *out.StoreName)
	require.NotNil(t, out.CatcafeStatus)
	assert.Equal(t, "working", *out.CatcafeStatus)
}

func TestNormalize_EmptyStringIsNull(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow)

	out, err := n.Normalize(`{"name":"  ","breed":""}`)

	require.NoError(t, err)
	assert.Nil(t, out.Name)
	assert.Nil(t, out.Breed)
}

func TestNormalize_VisibleString(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow)

	out, err := n.Normalize(`{"visible":"false"}`)

	require.NoError(t, err)
	require.NotNil(t, out.Visible)
	assert.False(t, *out.Visible)
}

func TestNormalize_Price(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  *float64
		warns bool
	}{
		{name: "number", raw: `{"price":2500.5}`, want: floatPtr(2500.5)},
		{name: "numeric string with unit", raw: `{"price":"3,000元"}`, want: floatPtr(3000)},
		{name: "yen sign", raw: `{"price":"¥1200"}`, want: floatPtr(1200)},
		{name: "non numeric string", raw: `{"price":"面议"}`, warns: true},
		{name: "zero", raw: `{"price":0}`, warns: true},
		{name: "negative", raw: `{"price":-5}`, warns: true},
		{name: "nan string", raw: `{"price":"NaN"}`, warns: true},
		{name: "infinity string", raw: `{"price":"+Inf"}`, warns: true},
		{name: "overflow string", raw: `{"price":"1e400"}`, warns: true},
		{name: "null", raw: `{"price":null}`},
	}

	n := aifill.NewNormalizer(fixedNow)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := n.Normalize(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Price)
			if tt.warns {
				assert.Len(t, out.Warnings, 1)
			} else {
				assert.Empty(t, out.Warnings)
			}
		})
	}
}

func TestNormalize_Vocabulary(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow).WithVocabulary(testVocabulary())

	out, err := n.Normalize(`{"breed":"缅因","storeName":"山东店","catcafeStatus":"休息中"}`)

	require.NoError(t, err)
	assert.Nil(t, out.Breed)
	assert.Equal(t, strPtr("山东店"), out.StoreName)
	assert.Equal(t, strPtr("resting"), out.CatcafeStatus)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "breed")
}

func TestNormalize_EmptyVocabularyAcceptsAnything(t *testing.T) {
	n := aifill.NewNormalizer(fixedNow).WithVocabulary(&aifill.Vocabulary{})

	out, err := n.Normalize(`{"breed":"缅因"}`)

	require.NoError(t, err)
	assert.Equal(t, strPtr("缅因"), out.Breed)
}

func floatPtr(f float64) *float64 { return &f }
