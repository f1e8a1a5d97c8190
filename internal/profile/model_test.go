package profile

import "testing"

func TestMergeSkillNamesAddsOnlyNewExactNames(t *testing.T) {
	p := Profile{
		Skills: []SkillRecord{{Skill: "React", Level: "expert", Score: 95}},
	}

	p.MergeSkillNames([]string{"React", "react", "Python", ""})

	if len(p.Skills) != 3 {
		t.Fatalf("expected 3 skill records, got %d", len(p.Skills))
	}
	if p.Skills[0].Level != "expert" || p.Skills[0].Score != 95 {
		t.Fatalf("existing record was modified: %+v", p.Skills[0])
	}
	if p.Skills[1].Skill != "react" || p.Skills[1].Level != "beginner" || p.Skills[1].Score != 0 {
		t.Fatalf("unexpected new record: %+v", p.Skills[1])
	}
	if p.Skills[2].Skill != "Python" {
		t.Fatalf("unexpected new record: %+v", p.Skills[2])
	}
}

func TestFindSkillIsCaseSensitive(t *testing.T) {
	p := Profile{
		Skills: []SkillRecord{{Skill: "JavaScript"}, {Skill: "javascript"}},
	}

	if got := p.FindSkill("JavaScript"); got != 0 {
		t.Fatalf("expected index 0, got %d", got)
	}
	if got := p.FindSkill("javascript"); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := p.FindSkill("JAVASCRIPT"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
