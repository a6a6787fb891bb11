package clients

import "context"

// --- Readability (/readability) ---
type ReadabilityReq struct {
	Text string `json:"text"`
}
type ReadabilityResp struct {
	SMOGIndex         float64 `json:"smog_index"`
	FleschReadingEase float64 `json:"flesch_reading_ease"`
	GunningFog        float64 `json:"gunning_fog"`
	LexiconCount      int     `json:"lexicon_count"`
	DifficultWords    int     `json:"difficult_words"`
}

func (h *HTTP) Readability(ctx context.Context, url, text string) (*ReadabilityResp, error) {
	var out ReadabilityResp
	if err := h.postJSON(ctx, "readability", url, "/readability", ReadabilityReq{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
