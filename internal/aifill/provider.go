package aifill

import "strings"

// Provider identifies a chat-completion backend.
type Provider string

const (
	ProviderZhipu   Provider = "zhipu"
	ProviderBailian Provider = "bailian"
)

// DefaultProvider is used whenever a selector does not name a known provider.
const DefaultProvider = ProviderZhipu

// Providers lists every supported provider in display order.
var Providers = []Provider{ProviderZhipu, ProviderBailian}

// ParseProvider maps a selector to a known provider. Blank or unknown
// selectors degrade to DefaultProvider.
func ParseProvider(s string) Provider {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderZhipu:
		return ProviderZhipu
	case ProviderBailian:
		return ProviderBailian
	default:
		return DefaultProvider
	}
}

// IsKnown reports whether p is one of the supported providers.
func (p Provider) IsKnown() bool {
	return p == ProviderZhipu || p == ProviderBailian
}

// variant carries everything that differs structurally between providers.
type variant struct {
	label     string
	keyURL    string
	envKey    string
	applyMode func(req *chatRequest)
}

func (p Provider) variant() variant {
	switch p {
	case ProviderBailian:
		return variant{
			label:  "Alibaba Bailian",
			keyURL: "https://bailian.console.aliyun.com/",
			envKey: "CATTERY_AI_BAILIAN_API_KEY",
			applyMode: func(req *chatRequest) {
				req.ResultFormat = "message"
			},
		}
	default:
		return variant{
			label:  "Zhipu AI",
			keyURL: "https://open.bigmodel.cn/usercenter/apikeys",
			envKey: "CATTERY_AI_ZHIPU_API_KEY",
			applyMode: func(req *chatRequest) {
				req.ResponseFormat = &responseFormat{Type: "json_object"}
			},
		}
	}
}

// Label returns the human-readable provider name used in error messages.
func (p Provider) Label() string { return p.variant().label }

// KeyURL returns where an operator can obtain an API key for p.
func (p Provider) KeyURL() string { return p.variant().keyURL }

// EnvKey returns the environment variable that carries p's API key.
func (p Provider) EnvKey() string { return p.variant().envKey }
