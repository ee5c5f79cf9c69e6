package materialize

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/afero"

	"github.com/GilTRipper/create-react-native-app/internal/output"
	"github.com/GilTRipper/create-react-native-app/internal/project"
)

// substituteJob is one file of the substitution list.
type substituteJob struct {
	index int
	rel   string
}

// substituteResult is what a worker reports for one file.
type substituteResult struct {
	index   int
	outcome Outcome
}

// substituteFiles applies table to every listed file that exists in fsys,
// which is rooted at the project. Files are independent of each other and
// are processed concurrently, one goroutine per file. Outcomes are returned
// in list order.
func substituteFiles(ctx context.Context, fsys afero.Fs, files []string, table *project.Table) []Outcome {
	jobs := make([]substituteJob, 0, len(files))
	seen := make(map[string]bool, len(files))
	for i, rel := range files {
		// Two workers must never touch the same path.
		if seen[rel] {
			continue
		}
		seen[rel] = true
		jobs = append(jobs, substituteJob{index: i, rel: rel})
	}

	resultChan := make(chan substituteResult, len(jobs))
	var wg sync.WaitGroup

	for _, job := range jobs {
		wg.Add(1)
		go func(j substituteJob) {
			defer wg.Done()
			resultChan <- substituteResult{index: j.index, outcome: substituteFile(ctx, fsys, j.rel, table)}
		}(job)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]substituteResult, 0, len(jobs))
	for r := range resultChan {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

	outcomes := make([]Outcome, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, r.outcome)
	}
	return outcomes
}

// substituteFile rewrites a single file in place.
func substituteFile(ctx context.Context, fsys afero.Fs, rel string, table *project.Table) Outcome {
	o := Outcome{Phase: PhaseSubstitute, Path: rel}

	if err := ctx.Err(); err != nil {
		o.Kind = KindFileSubstitutionSkipped
		o.Message = "cancelled"
		o.Err = err
		return o
	}

	path := filepath.FromSlash(rel)
	info, err := fsys.Stat(path)
	if err != nil {
		o.Kind = KindFileSubstitutionSkipped
		if errors.Is(err, fs.ErrNotExist) {
			o.Message = "not present"
			return o
		}
		o.Message = err.Error()
		o.Err = err
		return o
	}
	if info.IsDir() {
		o.Kind = KindFileSubstitutionSkipped
		o.Message = "is a directory"
		return o
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		o.Kind = KindFileSubstitutionSkipped
		o.Message = err.Error()
		o.Err = err
		return o
	}

	before := string(data)
	after := table.Apply(before)
	if after == before {
		o.Kind = KindUnchanged
		return o
	}

	if err := afero.WriteFile(fsys, path, []byte(after), info.Mode().Perm()); err != nil {
		o.Kind = KindFileSubstitutionSkipped
		o.Message = err.Error()
		o.Err = err
		return o
	}

	output.Debug("substituted placeholders", "path", rel)
	o.Kind = KindApplied
	return o
}
