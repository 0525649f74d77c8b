package aifill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cattery/internal/aifill"
)

func testVocabulary() *aifill.Vocabulary {
	return &aifill.Vocabulary{
		Breeds: []aifill.Option{
			{Label: "短毛金点弟弟", Value: "短毛金点弟弟"},
			{Label: "豹猫妹妹", Value: "豹猫妹妹"},
		},
		Stores: []aifill.Option{
			{Label: "山东店", Value: "山东店"},
			{Label: "苏州店", Value: "苏州店"},
		},
		Statuses: []aifill.Option{
			{Label: "工作中", Value: "working", Hint: "工作中/在店/上班"},
			{Label: "休息中", Value: "resting", Hint: "休息/休假"},
			{Label: "生病中", Value: "sick"},
		},
	}
}

func TestBuildSystemPrompt_EmbedsVocabulary(t *testing.T) {
	prompt := aifill.BuildSystemPrompt(testVocabulary())

	assert.Contains(t, prompt, "短毛金点弟弟、豹猫妹妹")
	assert.Contains(t, prompt, "山东店、苏州店")
	assert.Contains(t, prompt, "休息中/休息/休假 → resting")
	assert.Contains(t, prompt, "YYYY-MM-DD")
	assert.Contains(t, prompt, "null")
	assert.Contains(t, prompt, `"catcafeStatus":"resting"`)
}

func TestBuildSystemPrompt_StatusHintsComeFromVocabulary(t *testing.T) {
	vocab := &aifill.Vocabulary{
		Statuses: []aifill.Option{
			{Label: "营业中", Value: "open", Hint: "开门/营业"},
			{Label: "休息中", Value: "resting"},
			{Label: "工作中", Value: "working", Hint: "工作中"},
		},
	}

	prompt := aifill.BuildSystemPrompt(vocab)

	assert.Contains(t, prompt, "  - 营业中/开门/营业 → open\n")
	assert.Contains(t, prompt, "  - 休息中 → resting\n")
	assert.NotContains(t, prompt, "休息/休假")
	assert.Contains(t, prompt, "  - 工作中 → working\n")
}

func TestBuildSystemPrompt_Deterministic(t *testing.T) {
	v := testVocabulary()
	assert.Equal(t, aifill.BuildSystemPrompt(v), aifill.BuildSystemPrompt(v))
}

func TestBuildSystemPrompt_EmptyVocabulary(t *testing.T) {
	prompt := aifill.BuildSystemPrompt(nil)

	assert.Contains(t, prompt, "- breed: 猫咪品种")
	assert.Contains(t, prompt, "- storeName: 门店名称")
}

func TestBuildUserMessage(t *testing.T) {
	msg := aifill.BuildUserMessage("团子 2岁")
	assert.Equal(t, "请从以下文本中提取猫咪信息：\n\n团子 2岁", msg)
}
