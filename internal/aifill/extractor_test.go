package aifill_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cattery/internal/aifill"
	"cattery/internal/config"
)

const scenarioAText = "山东店。短毛金点弟弟 2025/6/8 驱虫疫苗齐全 眼睛大，体格壮，会趴肩膀，喜欢贴人睡觉 在售 3000元 休息中 现猫随时可接。"

type staticVocabulary struct {
	vocab *aifill.Vocabulary
	err   error
	calls int32
}

func (s *staticVocabulary) Vocabulary(_ context.Context) (*aifill.Vocabulary, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.vocab, s.err
}

type spyCompleter struct {
	calls   int32
	content string
	err     error
	system  string
	user    string
}

func (s *spyCompleter) Extract(_ context.Context, _ *aifill.ProviderConfig, systemPrompt, userMessage string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	s.system = systemPrompt
	s.user = userMessage
	return s.content, s.err
}

func aiConfigFor(endpoint string) *config.AIConfig {
	cfg := testAIConfig()
	cfg.Provider = "zhipu"
	cfg.Zhipu.Endpoint = endpoint
	cfg.Bailian.Endpoint = endpoint
	return cfg
}

func TestExtractor_EndToEnd_ScenarioA(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 2)
		assert.Contains(t, body.Messages[0].Content, "短毛金点弟弟、豹猫妹妹")
		assert.True(t, strings.HasSuffix(body.Messages[1].Content, scenarioAText))

		_ = json.NewEncoder(w).Encode(completionResponse(scenarioAOutput))
	}))
	defer server.Close()

	ex := aifill.NewExtractor(
		aifill.NewResolver(aiConfigFor(server.URL)),
		aifill.NewClient(5*time.Second),
		&staticVocabulary{vocab: testVocabulary()},
		aifill.WithClock(fixedNow),
	)

	out, err := ex.Extract(context.Background(), aifill.Input{Text: scenarioAText}, "")
	require.NoError(t, err)

	form := aifill.NewForm(aifill.FormValues{Visible: true})
	attributed := form.Merge(out)

	v := form.Values()
	assert.Equal(t, "短毛金点弟弟", v.Breed)
	assert.Equal(t, "山东店", v.StoreName)
	assert.Equal(t, "2025-06-08", v.Birthday)
	assert.Equal(t, 3000.0, *v.Price)
	assert.Equal(t, "resting", v.CatcafeStatus)
	assert.False(t, attributed.Has(aifill.FieldName))
	assert.Len(t, attributed, 7)
}

func TestExtractor_EndToEnd_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	ex := aifill.NewExtractor(
		aifill.NewResolver(aiConfigFor(server.URL)),
		aifill.NewClient(5*time.Second),
		&staticVocabulary{vocab: testVocabulary()},
		aifill.WithClock(fixedNow),
	)
	form := aifill.NewForm(aifill.FormValues{Name: "团子"})

	out, err := ex.Extract(context.Background(), aifill.Input{Text: "小猫一只"}, "bailian")

	assert.Nil(t, out)
	var pErr *aifill.ProviderError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, aifill.ProviderBailian, pErr.Provider)
	assert.Equal(t, http.StatusInternalServerError, pErr.StatusCode)
	assert.Equal(t, "团子", form.Values().Name)
	assert.Empty(t, form.Attribution())
}

func TestExtractor_MissingKey_NoNetworkCall(t *testing.T) {
	cfg := testAIConfig()
	cfg.Provider = "zhipu"
	cfg.Zhipu.APIKey = ""

	spy := &spyCompleter{content: "{}"}
	vocab := &staticVocabulary{vocab: testVocabulary()}
	ex := aifill.NewExtractor(aifill.NewResolver(cfg), spy, vocab)

	out, err := ex.Extract(context.Background(), aifill.Input{Text: "小猫一只"}, "")

	assert.Nil(t, out)
	var cErr *aifill.ConfigurationError
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, aifill.ProviderZhipu, cErr.Provider)
	assert.Zero(t, atomic.LoadInt32(&spy.calls))
	assert.Zero(t, atomic.LoadInt32(&vocab.calls))
}

func TestExtractor_EmptyText(t *testing.T) {
	spy := &spyCompleter{content: "{}"}
	ex := aifill.NewExtractor(aifill.NewResolver(testAIConfig()), spy, &staticVocabulary{vocab: testVocabulary()})

	_, err := ex.Extract(context.Background(), aifill.Input{Text: "   "}, "")

	assert.ErrorIs(t, err, aifill.ErrEmptyText)
	assert.Zero(t, atomic.LoadInt32(&spy.calls))
}

func TestExtractor_VocabularyError(t *testing.T) {
	spy := &spyCompleter{content: "{}"}
	ex := aifill.NewExtractor(aifill.NewResolver(testAIConfig()), spy, &staticVocabulary{err: errors.New("db down")})

	_, err := ex.Extract(context.Background(), aifill.Input{Text: "小猫"}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading vocabulary")
	assert.Zero(t, atomic.LoadInt32(&spy.calls))
}

func TestExtractor_Malformed(t *testing.T) {
	spy := &spyCompleter{content: "{not json"}
	ex := aifill.NewExtractor(aifill.NewResolver(testAIConfig()), spy, &staticVocabulary{vocab: testVocabulary()})

	_, err := ex.Extract(context.Background(), aifill.Input{Text: "小猫"}, "")

	assert.Equal(t, aifill.KindMalformedOutput, aifill.KindOf(err))
}

func TestExtractor_ValidationToggle(t *testing.T) {
	spy := &spyCompleter{content: `{"breed":"缅因"}`}
	vocab := &staticVocabulary{vocab: testVocabulary()}

	strict := aifill.NewExtractor(aifill.NewResolver(testAIConfig()), spy, vocab)
	out, err := strict.Extract(context.Background(), aifill.Input{Text: "缅因"}, "")
	require.NoError(t, err)
	assert.Nil(t, out.Breed)

	loose := aifill.NewExtractor(aifill.NewResolver(testAIConfig()), spy, vocab, aifill.WithVocabularyValidation(false))
	out, err = loose.Extract(context.Background(), aifill.Input{Text: "缅因"}, "")
	require.NoError(t, err)
	assert.Equal(t, strPtr("缅因"), out.Breed)
	assert.Equal(t, aifill.BuildUserMessage("缅因"), spy.user)
}
