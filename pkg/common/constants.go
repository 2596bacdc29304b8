package common

const (
	NewsProviderNewsData  = "newsdata"
	NewsProviderNewsAPI   = "newsapi"
	NewsProviderGoogleRSS = "googlerss"

	SentimentProviderHuggingFace = "huggingface"
	SentimentProviderLocal       = "local"
	SentimentProviderLLM         = "llm"

	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"

	SentimentCacheKeyPrefix = "sentiment:"

	// SentimentPageSize bounds classifier cost per ingestion call.
	SentimentPageSize = 3
	RawPageSize       = 3
	StoredNewsLimit   = 10
)
