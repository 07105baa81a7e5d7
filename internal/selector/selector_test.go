package selector

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"hmate/internal/model"
	"hmate/internal/pool"
)

const (
	tierX = model.TierSMA
	tierY = model.TierSMP
)

func templates(prefix string, n int) []model.QuestionTemplate {
	out := make([]model.QuestionTemplate, n)
	for i := range out {
		out[i] = model.QuestionTemplate{
			Question: fmt.Sprintf("%s-%d", prefix, i),
			Options: []model.Option{
				{Value: "A", Text: "a"},
				{Value: "B", Text: "b"},
				{Value: "C", Text: "c"},
				{Value: "D", Text: "d"},
			},
		}
	}
	return out
}

// fullPool has 10 templates in every category of tierX and one
// work_environment template in tierY.
func fullPool(t *testing.T) *pool.Pool {
	t.Helper()
	byCat := make(map[model.Category][]model.QuestionTemplate)
	for _, cat := range model.Categories {
		byCat[cat] = templates(string(cat), 10)
	}
	p, err := pool.New(pool.Catalogue{
		tierX: byCat,
		tierY: {model.CategoryWorkEnvironment: templates("solo", 1)},
	})
	if err != nil {
		t.Fatalf("pool.New: %v", err)
	}
	return p
}

func countByCategory(qs []model.SelectedQuestion) map[model.Category]int {
	out := make(map[model.Category]int)
	for _, q := range qs {
		out[q.Category]++
	}
	return out
}

func assertContiguousIDs(t *testing.T, qs []model.SelectedQuestion) {
	t.Helper()
	for i, q := range qs {
		if q.ID != i+1 {
			t.Fatalf("question %d has id %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestQuota(t *testing.T) {
	tests := []struct {
		count int
		want  []int
	}{
		{20, []int{5, 5, 4, 3, 3}},
		{30, []int{8, 8, 6, 5, 5}},
		{10, []int{3, 3, 2, 2, 2}},
		{1, []int{1, 1, 1, 1, 1}},
		{0, []int{0, 0, 0, 0, 0}},
		{-4, []int{0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		got := make([]int, len(model.Categories))
		for i, cat := range model.Categories {
			got[i] = Quota(cat, tt.count)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("quotas for %d = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestSelectAmpleSupplyExactComposition(t *testing.T) {
	s := New(fullPool(t), WithSource(NewSeededSource(1)))

	qs := s.Select(tierX, 20)
	if len(qs) != 20 {
		t.Fatalf("got %d questions, want 20", len(qs))
	}
	assertContiguousIDs(t, qs)

	want := map[model.Category]int{
		model.CategoryWorkEnvironment:  5,
		model.CategoryInteractionStyle: 5,
		model.CategoryProblemSolving:   4,
		model.CategoryStressPressure:   3,
		model.CategoryValuesMotivation: 3,
	}
	if got := countByCategory(qs); !reflect.DeepEqual(got, want) {
		t.Errorf("composition = %v, want %v", got, want)
	}
}

func TestDrawMatchesQuotasBeforeTruncation(t *testing.T) {
	s := New(fullPool(t), WithSource(NewSeededSource(2)))

	for _, count := range []int{1, 7, 20, 30, 37} {
		drawn := s.draw(tierX, count)
		got := countByCategory(drawn)
		for _, cat := range model.Categories {
			if got[cat] != Quota(cat, count) {
				t.Errorf("count %d, %s: drew %d, quota %d", count, cat, got[cat], Quota(cat, count))
			}
		}

		// Categories are concatenated in declaration order.
		pos := 0
		for _, cat := range model.Categories {
			for i := 0; i < Quota(cat, count); i++ {
				if drawn[pos].Category != cat {
					t.Fatalf("count %d: position %d is %s, want %s", count, pos, drawn[pos].Category, cat)
				}
				pos++
			}
		}
	}
}

func TestPrimaryFillHasNoDuplicates(t *testing.T) {
	s := New(fullPool(t))

	seen := make(map[string]bool)
	for _, q := range s.Select(tierX, 30) {
		if seen[q.Question] {
			t.Fatalf("duplicate %q with ample supply", q.Question)
		}
		seen[q.Question] = true
	}
}

func TestSelectTruncatesToCount(t *testing.T) {
	s := New(fullPool(t))

	// Quotas for 30 sum to 32.
	qs := s.Select(tierX, 30)
	if len(qs) != 30 {
		t.Fatalf("got %d questions, want 30", len(qs))
	}
	assertContiguousIDs(t, qs)
}

func TestSelectRepeatsUntilQuota(t *testing.T) {
	s := New(fullPool(t), WithSource(NewSeededSource(3)))

	// One work_environment template: quota 8 for a 30-question quiz.
	qs := s.Select(tierY, 30)
	if len(qs) != 8 {
		t.Fatalf("got %d questions, want 8", len(qs))
	}
	assertContiguousIDs(t, qs)
	for _, q := range qs {
		if q.Question != "solo-0" || q.Category != model.CategoryWorkEnvironment {
			t.Errorf("unexpected question %+v", q)
		}
	}
}

func TestSelectWithMaxCopiesCapsRepeats(t *testing.T) {
	s := New(fullPool(t), WithMaxCopies(1))

	qs := s.Select(tierY, 30)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].ID != 1 || qs[0].Question != "solo-0" {
		t.Errorf("unexpected question %+v", qs[0])
	}

	// A cap of two lets each of the three SMP work_environment templates
	// appear twice, enough for a quota of 5 (count 20).
	smp := New(pool.Default(), WithMaxCopies(2))
	got := countByCategory(smp.draw(model.TierSMP, 20))
	if got[model.CategoryWorkEnvironment] != 5 {
		t.Errorf("work_environment = %d, want 5", got[model.CategoryWorkEnvironment])
	}
	// Two problem_solving templates, cap 2: at most 4 of the quota of 4.
	if got[model.CategoryProblemSolving] != 4 {
		t.Errorf("problem_solving = %d, want 4", got[model.CategoryProblemSolving])
	}
	// Two stress_pressure templates, cap 2, quota 3.
	if got[model.CategoryStressPressure] != 3 {
		t.Errorf("stress_pressure = %d, want 3", got[model.CategoryStressPressure])
	}
}

func TestSelectEmptyTier(t *testing.T) {
	s := New(fullPool(t))

	qs := s.Select(model.TierMahasiswa, 30)
	if qs == nil || len(qs) != 0 {
		t.Errorf("got %v, want empty non-nil slice", qs)
	}
}

func TestSelectNonPositiveCount(t *testing.T) {
	s := New(fullPool(t))

	for _, count := range []int{0, -1} {
		if qs := s.Select(tierX, count); qs == nil || len(qs) != 0 {
			t.Errorf("Select(%d) = %v, want empty", count, qs)
		}
	}
}

func TestSelectDefaultCatalogue(t *testing.T) {
	s := New(pool.Default())

	for _, tier := range model.Tiers {
		for _, count := range []int{1, 5, 20, DefaultCount, 45} {
			qs := s.Select(tier, count)
			if len(qs) == 0 || len(qs) > count {
				t.Errorf("%s/%d: got %d questions", tier, count, len(qs))
			}
			assertContiguousIDs(t, qs)
			for _, q := range qs {
				if !q.Category.IsValid() || len(q.Options) != model.OptionsPerQuestion {
					t.Errorf("%s/%d: malformed question %+v", tier, count, q)
				}
			}
		}
	}

	// Every category is stocked, so repeats fill every quota and only
	// truncation limits the size.
	if got := len(s.Select(model.TierMahasiswa, DefaultCount)); got != DefaultCount {
		t.Errorf("MAHASISWA quiz has %d questions, want %d", got, DefaultCount)
	}
}

func TestSelectDoesNotMutatePool(t *testing.T) {
	p := pool.Default()
	before := p.Catalogue()
	s := New(p)

	first := s.Select(model.TierSMP, 30)
	first[0].Options[0].Text = "diubah"
	first[0].Question = "diubah"
	s.Select(model.TierSMP, 30)

	if !reflect.DeepEqual(before, p.Catalogue()) {
		t.Error("pool contents changed after Select")
	}
}

func TestSeededSelectionIsReproducible(t *testing.T) {
	p := fullPool(t)
	a := New(p, WithSource(NewSeededSource(42))).Select(tierX, 20)
	b := New(p, WithSource(NewSeededSource(42))).Select(tierX, 20)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different quizzes")
	}
}

func TestSelectConcurrent(t *testing.T) {
	s := New(pool.Default())

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			qs := s.Select(model.TierSMA, 25)
			if len(qs) != 25 {
				errs <- fmt.Sprintf("got %d questions", len(qs))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
