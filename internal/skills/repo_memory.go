package skills

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	skills map[string]Skill
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{skills: make(map[string]Skill)}
}

func (r *MemoryRepo) List(ctx context.Context, search string) ([]Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))

	r.mu.RLock()
	out := make([]Skill, 0, len(r.skills))
	for _, s := range r.skills {
		if needle != "" && !strings.Contains(strings.ToLower(s.Name), needle) {
			continue
		}
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, skill Skill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skills[skill.Name]; ok {
		return nil
	}
	if skill.Category == "" {
		skill.Category = "General"
	}
	r.skills[skill.Name] = skill
	return nil
}
