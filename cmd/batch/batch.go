package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/constraint-foundry/winnow/cmd/crypt"
	"github.com/constraint-foundry/winnow/pkg/winnow/input/cache"
	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline"
	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline/event"
	"github.com/constraint-foundry/winnow/pkg/winnow/pipeline/route"
	"github.com/constraint-foundry/winnow/pkg/winnow/solver"
)

const (
	producerID  pipeline.EventSourceID = "producer"
	collectorID pipeline.EventSourceID = "collector"
)

// Result is the outcome of one puzzle in a batch.
type Result struct {
	// Index is the puzzle's position in the batch input.
	Index int
	// Puzzle is the normalized puzzle text, when it parsed.
	Puzzle string
	// Answer is the solved puzzle in digit form, when one exists.
	Answer string
	// Nodes is the number of search positions the solve visited.
	Nodes int64
	// Cached reports that the answer was served from the result cache
	// without another search.
	Cached bool
	// Err is set when the puzzle failed to parse or has no solution.
	Err error
}

type task struct {
	index int
	text  string
}

type eventSource struct {
	id       pipeline.EventSourceID
	capacity int
}

func (s eventSource) EventSourceID() pipeline.EventSourceID { return s.id }
func (s eventSource) IngressCapacity() int                  { return s.capacity }

func workerID(i int) pipeline.EventSourceID {
	return pipeline.EventSourceID(fmt.Sprintf("worker-%d", i))
}

// Run solves a batch of puzzles concurrently. Puzzles are fanned out
// round-robin over the given number of solve workers through an event
// router, and answers are memoized in a shared prefix cache so a
// repeated puzzle is served without another search. Results come back
// in input order.
func Run(ctx context.Context, texts []string, workers int, options ...solver.Option) ([]Result, error) {
	if workers < 1 {
		return nil, fmt.Errorf("worker count must be positive, got %d", workers)
	}
	if len(texts) == 0 {
		return nil, nil
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	router := route.NewEventRouter(ctx)
	results := cache.NewPrefixCache[Result]()

	producer := eventSource{id: producerID, capacity: len(texts)}
	collector := eventSource{id: collectorID, capacity: len(texts)}
	router.AddRoute(producer)
	router.AddRoute(collector)
	for i := 0; i < workers; i++ {
		router.AddRoute(eventSource{id: workerID(i), capacity: len(texts)})
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		source := eventSource{id: workerID(i), capacity: len(texts)}
		workerRoute, _ := router.GetRoute(source.EventSourceID())
		router.Route(source)

		// tasks are dealt round-robin, so worker i owns every index
		// congruent to i modulo the worker count
		expected := 0
		for j := i; j < len(texts); j += workers {
			expected++
		}

		wg.Add(1)
		go func(source eventSource, workerRoute *route.Route, expected int) {
			defer wg.Done()
			work(ctx, source, workerRoute, results, expected, options...)
		}(source, workerRoute, expected)
	}

	producerRoute, _ := router.GetRoute(producerID)
	router.Route(producer)
	factory := event.NewEventFactory[task](producerID)
	go func() {
		defer close(producerRoute.OutputChannel())
		for i, text := range texts {
			ev := factory.NewDataEvent(task{index: i, text: text})
			ev.Route(workerID(i % workers))
			select {
			case producerRoute.OutputChannel() <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	collectorRoute, _ := router.GetRoute(collectorID)
	ordered := make([]Result, len(texts))
	for received := 0; received < len(texts); received++ {
		select {
		case ev := <-collectorRoute.InputChannel():
			resultEvent, ok := ev.(pipeline.DataEvent[Result])
			if !ok {
				return nil, fmt.Errorf("unexpected event %s", ev)
			}
			result := resultEvent.Data()
			ordered[result.Index] = result
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	cancel()
	wg.Wait()
	return ordered, nil
}

// work drains one worker's task feed, solving each puzzle (or serving
// it from the cache) and routing the result to the collector.
func work(ctx context.Context, source eventSource, workerRoute *route.Route, results *cache.PrefixCache[Result], expected int, options ...solver.Option) {
	factory := event.NewEventFactory[Result](source.EventSourceID())
	defer close(workerRoute.OutputChannel())

	for received := 0; received < expected; received++ {
		var t task
		select {
		case ev, ok := <-workerRoute.InputChannel():
			if !ok {
				return
			}
			taskEvent, ok := ev.(pipeline.DataEvent[task])
			if !ok {
				continue
			}
			t = taskEvent.Data()
		case <-ctx.Done():
			return
		}

		resultEvent := factory.NewDataEvent(solveTask(ctx, t, results, options...))
		resultEvent.Route(collectorID)
		select {
		case workerRoute.OutputChannel() <- resultEvent:
		case <-ctx.Done():
			return
		}
	}
}

func solveTask(ctx context.Context, t task, results *cache.PrefixCache[Result], options ...solver.Option) Result {
	puzzle, err := crypt.ParsePuzzle(t.text)
	if err != nil {
		return Result{Index: t.index, Puzzle: t.text, Err: err}
	}

	key := cache.Key("crypt" + cache.DefaultKeySeparator + puzzle.String())
	if cached, ok := results.Get(key); ok {
		cached.Index = t.index
		cached.Cached = true
		return cached
	}

	solution, err := solver.NewSolver(crypt.NewPuzzleSource(puzzle)).Solve(ctx, options...)
	if err != nil {
		return Result{Index: t.index, Puzzle: puzzle.String(), Err: err}
	}
	result := Result{
		Index:  t.index,
		Puzzle: puzzle.String(),
		Nodes:  solution.Stats().Nodes,
		Err:    solution.Error(),
	}
	if solution.Error() == nil {
		result.Answer = crypt.FormatSolution(puzzle, solution.Assignment())
	}
	results.Set(key, result)
	return result
}
