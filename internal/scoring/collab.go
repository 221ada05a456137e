package scoring

import "github.com/shopspring/decimal"

// Collaboration score point buckets.
const (
	collabIndustryPoints = 30
	collabLocationPoints = 20
	collabGoalPoints     = 5
	collabGoalCap        = 25
	collabSkillPoints    = 25
)

// CollabResult is the outcome of scoring one vendor pair for collaboration.
type CollabResult struct {
	Score              int
	CollaborationTypes []string
	SynergyAreas       []string
}

// CollabScore rates how well two vendors would collaborate, in [0,100],
// using discrete point buckets. Shared-goal points are capped at the
// category's nominal weight so a long goal list cannot dominate the score.
func (e *Engine) CollabScore(a, b VendorFacts) CollabResult {
	res := CollabResult{CollaborationTypes: []string{}}

	if e.industriesComplementary(a.Industry, b.Industry) {
		res.Score += collabIndustryPoints
		res.CollaborationTypes = append(res.CollaborationTypes, "cross_promotion")
	}

	if a.Location != "" && a.Location == b.Location {
		res.Score += collabLocationPoints
		res.CollaborationTypes = append(res.CollaborationTypes, "local_partnership")
	}

	if shared := sharedStrings(a.Goals, b.Goals); len(shared) > 0 {
		points := len(shared) * collabGoalPoints
		if points > collabGoalCap {
			points = collabGoalCap
		}
		res.Score += points
		res.CollaborationTypes = append(res.CollaborationTypes, "shared_objectives")
	}

	if e.skillsComplementary(a.Industry, b.Industry) {
		res.Score += collabSkillPoints
		res.CollaborationTypes = append(res.CollaborationTypes, "skill_exchange")
	}

	res.SynergyAreas = e.synergyAreas(a, b)
	return res
}

func (e *Engine) industriesComplementary(industry1, industry2 string) bool {
	for _, pair := range e.cfg.ComplementaryIndustries {
		if (industry1 == pair[0] && industry2 == pair[1]) ||
			(industry1 == pair[1] && industry2 == pair[0]) {
			return true
		}
	}
	return false
}

// skillsComplementary treats mostly-different skill sets as complementary:
// fewer than two shared entries in the industry skill table counts.
func (e *Engine) skillsComplementary(industry1, industry2 string) bool {
	skills1 := e.cfg.IndustrySkills[industry1]
	skills2 := e.cfg.IndustrySkills[industry2]
	return len(sharedStrings(skills1, skills2)) < 2
}

var lowBudgetCutoff = decimal.NewFromInt(5000)

func (e *Engine) synergyAreas(a, b VendorFacts) []string {
	areas := []string{}

	if len(a.TargetAudience) > 0 && len(b.TargetAudience) > 0 &&
		len(sharedStrings(a.TargetAudience, b.TargetAudience)) > 0 {
		areas = append(areas, "shared_customer_base")
	}
	if a.Budget.LessThan(lowBudgetCutoff) || b.Budget.LessThan(lowBudgetCutoff) {
		areas = append(areas, "resource_pooling")
	}
	if containsString(a.Goals, "increase_sales") && containsString(b.Goals, "increase_sales") {
		areas = append(areas, "joint_marketing")
	}
	if a.Location != "" && a.Location == b.Location {
		areas = append(areas, "local_partnership")
	}

	return areas
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
