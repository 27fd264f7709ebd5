// README: Smoke cases covering /chat, the admin gate and the analytics views.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"travelrelay/internal/modules/prompt"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, httpc: &http.Client{Timeout: 60 * time.Second}}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "API: health",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/health", nil, false)
				return expectStatus(status, latency, err, http.StatusOK)
			},
		},
		{
			Name: "Chat: off-topic prompt is refused",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.do(ctx, http.MethodPost, base+"/chat", map[string]any{"prompt": "what is the capital of mars"}, false)
				res := expectStatus(status, latency, err, http.StatusOK)
				if res.Status != StatusPass {
					return res
				}
				var out struct {
					Response string `json:"response"`
				}
				if err := json.Unmarshal(body, &out); err != nil || out.Response != prompt.RefusalMessage {
					return Result{Status: StatusFail, Latency: latency, Note: "unexpected body: " + string(body)}
				}
				return res
			},
		},
		{
			Name: "Chat: structured trip (live upstream)",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.Live {
					return Result{Status: StatusSkip, Note: "live=false"}
				}
				status, _, latency, err := r.do(ctx, http.MethodPost, base+"/chat", map[string]any{
					"destination": "Goa", "days": "3", "budget": "15000", "preferences": "beaches",
				}, false)
				return expectStatus(status, latency, err, http.StatusOK)
			},
		},
		{
			Name: "Admin: queries without credentials -> 401",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/admin/queries", nil, false)
				return expectStatus(status, latency, err, http.StatusUnauthorized)
			},
		},
		{
			Name: "Admin: analytics without credentials -> 401",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/admin/analytics", nil, false)
				return expectStatus(status, latency, err, http.StatusUnauthorized)
			},
		},
		{
			Name: "Admin: query ids are 1..N",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.do(ctx, http.MethodGet, base+"/admin/queries", nil, true)
				res := expectStatus(status, latency, err, http.StatusOK)
				if res.Status != StatusPass {
					return res
				}
				var records []struct {
					ID int `json:"id"`
				}
				if err := json.Unmarshal(body, &records); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				for i, rec := range records {
					if rec.ID != i+1 {
						return Result{Status: StatusFail, Note: fmt.Sprintf("record %d has id %d", i, rec.ID)}
					}
				}
				res.Note = fmt.Sprintf("records=%d", len(records))
				return res
			},
		},
		{
			Name: "Admin: analytics shape",
			Run: func(ctx context.Context, r *Runner) Result {
				status, body, latency, err := r.do(ctx, http.MethodGet, base+"/admin/analytics", nil, true)
				res := expectStatus(status, latency, err, http.StatusOK)
				if res.Status != StatusPass {
					return res
				}
				var a struct {
					TotalQueries        *int              `json:"totalQueries"`
					PopularDestinations []json.RawMessage `json:"popularDestinations"`
					RecentActivity      []json.RawMessage `json:"recentActivity"`
				}
				if err := json.Unmarshal(body, &a); err != nil || a.TotalQueries == nil {
					return Result{Status: StatusFail, Note: "unexpected body: " + string(body)}
				}
				if len(a.PopularDestinations) > 5 || len(a.RecentActivity) > 10 {
					return Result{Status: StatusFail, Note: "view exceeds its limit"}
				}
				res.Note = fmt.Sprintf("total=%d", *a.TotalQueries)
				return res
			},
		},
		{
			Name: "Perf: refusal path under load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/chat", map[string]any{"prompt": "hello"})
			},
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any, auth bool) (int, []byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.SetBasicAuth(r.cfg.AdminUser, r.cfg.AdminPassword)
	}
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	return resp.StatusCode, data, time.Since(start), err
}

func expectStatus(status int, latency time.Duration, err error, want int) Result {
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	if status != want {
		return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d want=%d", status, want)}
	}
	return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					errCount.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	if count.Load() == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())}
}
