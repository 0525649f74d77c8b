package aifill

import (
	"strings"
)

const exampleInput = "山东店。短毛金点弟弟 2025/6/8 驱虫疫苗齐全 眼睛大，体格壮，会趴肩膀，喜欢贴人睡觉 在售 3000元 休息中 现猫随时可接。"

const exampleOutput = `{"name":null,"breed":"短毛金点弟弟","storeName":"山东店","birthday":"2025-06-08","price":3000,"description":"驱虫疫苗齐全 眼睛大，体格壮，会趴肩膀，喜欢贴人睡觉 在售 现猫随时可接","catcafeStatus":"resting","visible":true}`

// BuildSystemPrompt returns the extraction instructions with the live
// vocabulary embedded. Output is deterministic for a given vocabulary.
func BuildSystemPrompt(vocab *Vocabulary) string {
	if vocab == nil {
		vocab = &Vocabulary{}
	}

	var b strings.Builder
	b.WriteString("你是一个专业的猫咖信息录入助手。请从用户输入中提取猫咪信息，返回 JSON 格式。\n\n")

	b.WriteString("## 字段说明\n")
	b.WriteString(`- name: 猫咪名字，如"小咪"、"团子"` + "\n")
	if len(vocab.Breeds) > 0 {
		b.WriteString("- breed: 必须从以下品种中选择：" + strings.Join(vocab.BreedValues(), "、") + "\n")
	} else {
		b.WriteString("- breed: 猫咪品种\n")
	}
	if len(vocab.Stores) > 0 {
		b.WriteString("- storeName: 门店，必须从以下门店中选择：" + strings.Join(values(vocab.Stores), "、") + "\n")
	} else {
		b.WriteString("- storeName: 门店名称\n")
	}
	b.WriteString("- birthday: 转换为 YYYY-MM-DD 格式\n")
	b.WriteString(`  - "2岁" → 推算为当前日期-2年` + "\n")
	b.WriteString(`  - "2023年8月" → 2023-08-01` + "\n")
	b.WriteString(`  - "去年5月" → 去年-05-01` + "\n")
	b.WriteString(`  - "8个月" → 当前日期-8个月` + "\n")
	b.WriteString("- price: 提取数字价格（正数，不带单位）\n")
	b.WriteString("- description: 猫咪的描述信息\n")
	b.WriteString("- catcafeStatus: 根据关键词判断，只能返回右侧的值\n")
	for _, s := range vocab.Statuses {
		hint := strings.TrimSpace(s.Hint)
		if hint != "" && hint != s.Label {
			b.WriteString("  - " + s.Label + "/" + hint + " → " + s.Value + "\n")
		} else {
			b.WriteString("  - " + s.Label + " → " + s.Value + "\n")
		}
	}
	b.WriteString("- visible: 默认 true\n\n")

	b.WriteString("## 返回格式\n")
	b.WriteString("只返回 JSON 对象，不要有任何其他文字说明。\n")
	b.WriteString("JSON 必须包含以下全部字段：name, breed, storeName, birthday, price, description, catcafeStatus, visible。\n")
	b.WriteString("无法提取的字段请设置为 null（JSON 中的 null，不要删除字段）。\n\n")

	b.WriteString("## 示例\n")
	b.WriteString("输入：" + exampleInput + "\n")
	b.WriteString("输出：" + exampleOutput)

	return b.String()
}

// BuildUserMessage wraps the free text in the user turn.
func BuildUserMessage(freeText string) string {
	return "请从以下文本中提取猫咪信息：\n\n" + freeText
}
