package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case AuthResult:
		o.printAuthResult(v)
	case Session:
		o.printSession(v)
	case TradeProposalResult:
		o.printTradeProposal(v)
	case SimulateResult:
		o.printSimulateResult(v)
	case HintResult:
		o.printHintResult(v)
	case ShareResult:
		o.printShareResult(v)
	case Profile:
		o.printProfile(v)
	case []AchievementStatus:
		o.printAchievements(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Account response type (matches API)
type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines account and token
type AuthResult struct {
	Account Account   `json:"account"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Player response type
type Player struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	Salary          int64  `json:"salary"`
	EffectiveSalary int64  `json:"effective_salary"`
	QualityPoints   int    `json:"quality_points"`
	IsStar          bool   `json:"is_star"`
	IsRosterOrigin  bool   `json:"is_roster_origin"`
	BirdEligible    bool   `json:"bird_eligible"`
	Status          string `json:"status"`
	UseMLE          bool   `json:"use_mle"`
	UseVetMin       bool   `json:"use_vet_min"`
}

// Aggregates response type
type Aggregates struct {
	TotalPayroll         int64   `json:"total_payroll"`
	PayrollExcludingBird int64   `json:"payroll_excluding_bird"`
	TotalQualityPoints   int     `json:"total_quality_points"`
	SignedCount          int     `json:"signed_count"`
	StarsSigned          int     `json:"stars_signed"`
	VetMinCount          int     `json:"vet_min_count"`
	MLEInUse             bool    `json:"mle_in_use"`
	CapRoom              int64   `json:"cap_room"`
	CapEfficiency        float64 `json:"cap_efficiency"`
}

// RuleReport response type
type RuleReport struct {
	RosterSize              bool `json:"roster_size"`
	UnderCap                bool `json:"under_cap"`
	StarsKept               bool `json:"stars_kept"`
	QualityPoints           bool `json:"quality_points"`
	PositionDiversity       bool `json:"position_diversity"`
	PositionDiversityActive bool `json:"position_diversity_active"`
}

// Difficulty response type
type Difficulty struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	SalaryCap int64  `json:"salary_cap"`
	QPMinimum int    `json:"qp_minimum"`
}

// SeasonResult response type
type SeasonResult struct {
	Tier        string `json:"tier"`
	Record      string `json:"record"`
	Playoff     string `json:"playoff"`
	Description string `json:"description"`
	ClaimCode   string `json:"claim_code"`
}

// ChallengeStatus response type
type ChallengeStatus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// Session response type
type Session struct {
	ID             string            `json:"id"`
	Difficulty     Difficulty        `json:"difficulty"`
	Players        []Player          `json:"players"`
	PendingTradeID int               `json:"pending_trade_id,omitempty"`
	Aggregates     Aggregates        `json:"aggregates"`
	Rules          RuleReport        `json:"rules"`
	HasWon         bool              `json:"has_won"`
	LastOutcome    *SeasonResult     `json:"last_outcome,omitempty"`
	Challenges     []ChallengeStatus `json:"challenges"`
	MoveCount      int               `json:"move_count"`
}

// TradeCandidate response type
type TradeCandidate struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	Salary        int64  `json:"salary"`
	QualityPoints int    `json:"quality_points"`
	Eligible      bool   `json:"eligible"`
}

// TradeProposal response type
type TradeProposal struct {
	OutgoingID      int              `json:"outgoing_id"`
	OutgoingSalary  int64            `json:"outgoing_salary"`
	MaxReturnSalary int64            `json:"max_return_salary"`
	Candidates      []TradeCandidate `json:"candidates"`
}

// TradeProposalResult response type
type TradeProposalResult struct {
	Session  Session        `json:"session"`
	Proposal *TradeProposal `json:"proposal"`
}

// SimulateResult response type
type SimulateResult struct {
	Result  *SeasonResult `json:"result"`
	Session Session       `json:"session"`
}

// HintResult response type
type HintResult struct {
	Hint string   `json:"hint"`
	Tips []string `json:"tips"`
}

// ShareResult response type
type ShareResult struct {
	Code string `json:"code"`
}

// Profile response type
type Profile struct {
	GamesPlayed        int      `json:"games_played"`
	GamesWon           int      `json:"games_won"`
	DifficultiesBeaten []string `json:"difficulties_beaten"`
	Achievements       []string `json:"achievements"`
	HasSavedGame       bool     `json:"has_saved_game"`
}

// AchievementStatus response type
type AchievementStatus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func money(v int64) string {
	return fmt.Sprintf("$%.1fM", float64(v)/1e6)
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func (o *Output) printAccount(a Account) {
	guestStr := "no"
	if a.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Account: %s (%s)\n", a.DisplayName, a.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printAccount(a.Account)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Session: %s [%s]\n", s.ID, s.Difficulty.Label)
	fmt.Printf("Cap: %s spent / %s limit (room %s)\n",
		money(s.Aggregates.PayrollExcludingBird),
		money(s.Difficulty.SalaryCap),
		money(s.Aggregates.CapRoom),
	)
	fmt.Printf("Q-Pts: %d / %d  Signed: %d  Stars: %d  Moves: %d\n",
		s.Aggregates.TotalQualityPoints, s.Difficulty.QPMinimum,
		s.Aggregates.SignedCount, s.Aggregates.StarsSigned, s.MoveCount,
	)

	fmt.Println("\nRules:")
	fmt.Printf("  %s roster size\n", check(s.Rules.RosterSize))
	fmt.Printf("  %s under cap\n", check(s.Rules.UnderCap))
	fmt.Printf("  %s stars kept\n", check(s.Rules.StarsKept))
	fmt.Printf("  %s quality points\n", check(s.Rules.QualityPoints))
	if s.Rules.PositionDiversityActive {
		fmt.Printf("  %s position diversity\n", check(s.Rules.PositionDiversity))
	}

	if len(s.Challenges) > 0 {
		fmt.Println("\nChallenges:")
		for _, c := range s.Challenges {
			fmt.Printf("  %s %s - %s\n", check(c.Complete), c.Name, c.Description)
		}
	}

	fmt.Println("\nRoster:")
	for _, p := range s.Players {
		if p.Status != "signed" {
			continue
		}
		tags := []string{}
		if p.IsStar {
			tags = append(tags, "star")
		}
		if p.BirdEligible {
			tags = append(tags, "bird")
		}
		if p.UseMLE {
			tags = append(tags, "MLE")
		}
		if p.UseVetMin {
			tags = append(tags, "vet-min")
		}
		tagStr := ""
		if len(tags) > 0 {
			tagStr = " [" + strings.Join(tags, ",") + "]"
		}
		fmt.Printf("  #%d %s (%s) %s, %d Q-Pts%s\n",
			p.ID, p.Name, p.Position, money(p.EffectiveSalary), p.QualityPoints, tagStr)
	}

	if s.PendingTradeID != 0 {
		fmt.Printf("\nTrade pending for player %d\n", s.PendingTradeID)
	}
	if s.HasWon {
		fmt.Println("\nRoster complete!")
		if s.LastOutcome != nil {
			o.printSeasonResult(*s.LastOutcome)
		}
	}
}

func (o *Output) printSeasonResult(r SeasonResult) {
	fmt.Printf("Season: %s (%s, %s)\n", r.Tier, r.Record, r.Playoff)
	fmt.Printf("  %s\n", r.Description)
	fmt.Printf("  Claim code: %s\n", r.ClaimCode)
}

func (o *Output) printTradeProposal(t TradeProposalResult) {
	if t.Proposal == nil {
		fmt.Println("No proposal")
		return
	}
	p := t.Proposal
	fmt.Printf("Trading player %d (%s out, max return %s)\n",
		p.OutgoingID, money(p.OutgoingSalary), money(p.MaxReturnSalary))
	fmt.Println("Candidates:")
	for _, c := range p.Candidates {
		marker := " "
		if c.Eligible {
			marker = "*"
		}
		fmt.Printf("  %s #%d %s (%s) %s, %d Q-Pts\n",
			marker, c.ID, c.Name, c.Position, money(c.Salary), c.QualityPoints)
	}
	fmt.Println("(* = within the salary ceiling)")
}

func (o *Output) printSimulateResult(s SimulateResult) {
	if s.Result != nil {
		o.printSeasonResult(*s.Result)
	}
}

func (o *Output) printHintResult(h HintResult) {
	fmt.Printf("Coach: %s\n", h.Hint)
	if len(h.Tips) > 1 {
		fmt.Println("\nMore tips:")
		for _, tip := range h.Tips[1:] {
			fmt.Printf("  - %s\n", tip)
		}
	}
}

func (o *Output) printShareResult(s ShareResult) {
	fmt.Printf("Build code: %s\n", s.Code)
}

func (o *Output) printProfile(p Profile) {
	fmt.Printf("Games: %d played, %d won\n", p.GamesPlayed, p.GamesWon)
	if len(p.DifficultiesBeaten) > 0 {
		fmt.Printf("Beaten: %s\n", strings.Join(p.DifficultiesBeaten, ", "))
	}
	fmt.Printf("Achievements: %d\n", len(p.Achievements))
	if p.HasSavedGame {
		fmt.Println("A saved game is available (capcrash session resume)")
	}
}

func (o *Output) printAchievements(list []AchievementStatus) {
	for _, a := range list {
		fmt.Printf("  %s %s - %s\n", check(a.Earned), a.Name, a.Description)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
