package domain

import (
	"encoding/json"
	"sort"
	"time"
)

const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

const (
	ErrCodeParseFailed = "parse_failed"
	ErrCodeIOFailed    = "io_failed"
)

// RunReport 是对外稳定输出（--json 模式 stdout JSON）的结构。
type RunReport struct {
	Path string `json:"path"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Summary ReportSummary `json:"summary"`
	Items   []FileResult  `json:"items"`
}

type ReportSummary struct {
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// FileResult 是单个文件的校验结论，产出后不再变更。
type FileResult struct {
	Path   string `json:"path"`
	Status string `json:"status"`

	ErrorCode string `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

// Finalize 做三件事：
// 1) 时间统一为 UTC（确保 JSON 为 RFC3339 且后缀 Z）
// 2) items 稳定排序：按 path 字典序
// 3) summary 由 items 计算得出
func (r *RunReport) Finalize() {
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	sort.SliceStable(r.Items, func(i, j int) bool {
		return r.Items[i].Path < r.Items[j].Path
	})

	var s ReportSummary
	for _, it := range r.Items {
		switch it.Status {
		case StatusValid:
			s.Valid++
		case StatusInvalid:
			s.Invalid++
		}
	}
	r.Summary = s
}

// AllValid 表示整体成功的判定：至少发现一个文件，且全部有效。
// “零文件视为失败”是刻意保留的策略，不是疏漏。
func (r RunReport) AllValid() bool {
	return len(r.Items) > 0 && r.Summary.Invalid == 0
}

// MarshalJSON 仅用于集中约束输出的稳定性（避免未来不小心引入非确定字段）。
// 当前只是透传 encoding/json 的默认行为。
func (r RunReport) MarshalJSON() ([]byte, error) {
	type Alias RunReport
	return json.Marshal(Alias(r))
}
