package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/RyanBrewer317/glimmer/pkg/dream"
	"github.com/RyanBrewer317/glimmer/pkg/stream"
)

// ============================================================================
// DOMAIN LOGIC (EXAMPLE USAGE)
// ============================================================================

// Data Types
type RawLog struct {
	ID     int
	Source string
	Level  int
}
type AnalyzedEvent struct {
	ID       int
	Category string
}

// Generators
func generateLogs(source string, count int) func(yield func(RawLog), stop func()) {
	return func(yield func(RawLog), stop func()) {
		for i := range count {
			yield(RawLog{ID: i, Source: source, Level: i % 5})
		}
		stop()
	}
}

func analyzeLog(log RawLog) AnalyzedEvent {
	category := "INFO"
	if log.Level == 3 {
		category = "WARN"
	}
	if log.Level >= 4 {
		category = "ERROR"
	}
	return AnalyzedEvent{ID: log.ID, Category: category}
}

// ============================================================================
// EXPLICIT PIPELINE DEMONSTRATION
// ============================================================================

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	stream.SetLogger(logger)
	dream.SetLogger(logger)

	fmt.Println("--- Constructing Pipeline ---")
	startTime := time.Now()

	// Topology Definition:
	// [GenA, GenB] -> (Merge) -> [RawLogs]
	//              -> (Map: Analyze) -> [AnalyzedEvents]
	//              -> (Duplicate) -> [All], [ErrorsOnly]

	// 1. Sources. Generator runs synchronously; writes never block, so
	// both sources are fully buffered by the time Merge sees them.
	logsA := stream.Generator(generateLogs("A", 50_000))
	logsB := stream.Generator(generateLogs("B", 30_000))

	// 2. Fan-in.
	allLogs := stream.Merge(logsA, logsB)

	// 3. Analysis stage.
	analyzed := stream.Map(allLogs, analyzeLog)

	// 4. Fan-out: one branch counts everything, one counts errors.
	branchAll, branchErrors := stream.Duplicate(analyzed)
	onlyErrors := stream.Filter(branchErrors, func(evt AnalyzedEvent) bool {
		return evt.Category == "ERROR"
	})

	// 5. Sinks, joined through dream handles.
	totalCount := dream.Async(func() int {
		return stream.Reduce(branchAll, 0, func(_ AnalyzedEvent, acc int) int {
			return acc + 1
		})
	})
	errorCount := dream.Async(func() int {
		return stream.Reduce(onlyErrors, 0, func(_ AnalyzedEvent, acc int) int {
			return acc + 1
		})
	})

	fmt.Printf("Total Events: %d\n", dream.Await(totalCount))
	fmt.Printf("Error Events: %d\n", dream.Await(errorCount))
	fmt.Printf("--- Pipeline Complete in %s ---\n", time.Since(startTime))
}
