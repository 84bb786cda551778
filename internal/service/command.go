package service

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// step is one unit of a forward/compensate command pipeline. invoke performs
// the action; compensate undoes it when a later step fails. Pipelines here are
// short (validate + write), but the contract keeps multi-step flows possible.
type step struct {
	name       string
	invoke     func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// runSteps executes steps in order. On failure it invokes the compensations of
// all previously completed steps in reverse order, then returns the original
// error. Compensation failures are logged, not returned.
func runSteps(ctx context.Context, steps []step) error {
	for i, s := range steps {
		if err := s.invoke(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				prev := steps[j]
				if prev.compensate == nil {
					continue
				}
				if cerr := prev.compensate(ctx); cerr != nil {
					logJSON(map[string]any{
						"level": "error",
						"msg":   "step_compensation_failed",
						"step":  prev.name,
						"error": cerr.Error(),
					})
				}
			}
			return err
		}
	}
	return nil
}

// logJSON emits one structured JSON log line, matching the service-wide
// logging format.
func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal log entry: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
