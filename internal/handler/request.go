package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/naciro2010/ProfileForge/internal/model"
	"github.com/naciro2010/ProfileForge/internal/utils"
)

// maxBodyBytes 请求体上限
const maxBodyBytes = 1 << 20

// ErrorResponse 统一的错误响应
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, details ...string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// decode 读取请求体，先做schema校验再反序列化到 dst
// 失败时已写好400响应，返回false
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, schema string, dst interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	details, err := h.validator.validate(schema, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	if len(details) > 0 {
		writeError(w, http.StatusBadRequest, "validation failed", details...)
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// cleanProfile 去掉about和成就里的HTML片段，规范化语言标签
func cleanProfile(p *model.ProfileSnapshot) []string {
	p.About = utils.StripMarkup(p.About)
	for i := range p.Experiences {
		p.Experiences[i].Achievements = utils.StripMarkup(p.Experiences[i].Achievements)
	}

	var details []string
	for i, raw := range p.Languages {
		tag, err := language.Parse(strings.TrimSpace(raw))
		if err != nil {
			details = append(details, fmt.Sprintf("profile.languages.%d: %q is not a valid language tag", i, raw))
			continue
		}
		p.Languages[i] = tag.String()
	}
	return details
}

// normalizeCurrency 校验ISO 4217代码，空值保持为空
func normalizeCurrency(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("currency: %q is not an ISO 4217 code", code)
	}
	return unit.String(), nil
}
