// Command planner walks the full goal-to-plan flow in the terminal:
// goal -> summary -> clarification rounds -> overview -> timeline -> plan.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"moti/internal/config"
	"moti/internal/elicit"
	"moti/internal/llm"
	"moti/internal/plangen"
)

func main() {
	provider := flag.String("provider", "", "generation provider: groq, gemini or fake (default: auto)")
	model := flag.String("model", "", "model id override")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	client, err := buildClient(ctx, *provider, *model)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 64*1024)

	goal := askGoal(ctx, in, client)

	questions := &plangen.Questions{LLM: client}
	primary, err := questions.Run(ctx, goal)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			log.Fatal("AI features are disabled - API key not configured")
		}
		log.Fatalf("failed to generate questions: %v", err)
	}

	state, err := elicit.New(primary)
	if err != nil {
		log.Fatal(err)
	}
	followUp := &plangen.FollowUp{LLM: client}
	state = runElicitation(ctx, in, state, followUp, goal)

	answers := plangen.AnswerSet(state.Answers)

	overviewGen := plangen.NewOverviewGen(client, 16)
	overview, err := overviewGen.Run(ctx, goal, answers)
	if err != nil {
		log.Fatalf("failed to generate overview: %v", err)
	}
	fmt.Println("\nPlan overview:")
	for i, step := range overview.Steps {
		fmt.Printf("  %d. %s\n     %s\n", i+1, step.Title, step.Description)
	}

	timeline := &plangen.Timeline{
		LLM:        client,
		Calibrator: plangen.TimelineCalibrator{Compression: timelineCompression()},
	}
	estimate, err := timeline.Run(ctx, goal, answers, overview)
	if err != nil {
		log.Fatalf("failed to generate timeline: %v", err)
	}
	fmt.Printf("\nSuggested timeline: %s (between %s and %s)\n",
		plangen.FormatWeeks(estimate.SuggestedWeeks),
		plangen.FormatWeeks(estimate.MinimumWeeks),
		plangen.FormatWeeks(estimate.MaximumWeeks))
	fmt.Printf("Reasoning: %s\n", estimate.Reasoning)

	selected := askWeeks(in, estimate)
	intensity := plangen.IntensityFor(selected, estimate.SuggestedWeeks)
	fmt.Printf("Pace: %s (%s)\n", intensity.Description, intensity.HoursPerDay)

	planGen := &plangen.PlanGen{LLM: client}
	plan, err := planGen.Run(ctx, goal, map[string]string{
		"timeline":  plangen.FormatWeeks(selected),
		"intensity": fmt.Sprintf("%s (%s)", intensity.Description, intensity.HoursPerDay),
	})
	if err != nil {
		log.Fatalf("failed to generate plan: %v", err)
	}
	printPlan(plan)
}

func buildClient(ctx context.Context, provider, model string) (llm.Client, error) {
	groqKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	geminiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if provider == "" {
		if groqKey == "" && geminiKey != "" {
			provider = "gemini"
		} else {
			provider = "groq"
		}
	}
	switch provider {
	case "gemini":
		if model == "" {
			model = "gemini-2.5-flash"
		}
		return llm.NewGeminiClient(ctx, geminiKey, model, 0, 0)
	case "fake":
		return llm.NewFakeClient(), nil
	default:
		if model == "" {
			model = "llama3-70b-8192"
		}
		return llm.NewGroqClient(groqKey, model), nil
	}
}

func timelineCompression() int {
	if v := strings.TrimSpace(os.Getenv("TIMELINE_COMPRESSION")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return n
		}
	}
	return config.DefaultTimelineCompression
}

func askGoal(ctx context.Context, in *bufio.Scanner, client llm.Client) string {
	summarizer := &plangen.Summary{LLM: client}
	for {
		fmt.Print("What do you want to achieve?\n> ")
		if !in.Scan() {
			os.Exit(0)
		}
		goal := strings.TrimSpace(in.Text())
		if goal == "" {
			continue
		}
		summary, err := summarizer.Run(ctx, goal)
		switch {
		case err == nil:
			fmt.Printf("Got it: %s\n", summary)
			return goal
		case errors.Is(err, plangen.ErrGoalTooVague):
			fmt.Println("Hmm. That's a bit unclear. Try describing it differently.")
		default:
			// Summarization is a convenience; keep going without it.
			log.Printf("summary unavailable: %v", err)
			return goal
		}
	}
}

func runElicitation(ctx context.Context, in *bufio.Scanner, state elicit.State, followUp *plangen.FollowUp, goal string) elicit.State {
	for !state.Done() {
		switch state.Kind {
		case elicit.KindAsking:
			question, _ := state.Question()
			fmt.Printf("\n[%s, %.0f%%] %s\n", state.StatusText(), state.Progress(), question)
			fmt.Print("(answer, or press enter to skip, '<' to go back)\n> ")
			if !in.Scan() {
				os.Exit(0)
			}
			line := strings.TrimSpace(in.Text())
			var ev elicit.Event
			switch line {
			case "":
				ev = elicit.Skip{}
			case "<":
				ev = elicit.Back{}
			default:
				ev = elicit.Answer{Text: line}
			}
			next, err := elicit.Transition(state, ev)
			if err != nil {
				fmt.Println(err)
				continue
			}
			state = next
		case elicit.KindAwaitingChoice:
			fmt.Printf("\nGreat progress! %d questions answered.\n", len(state.Answers))
			fmt.Print("1) See my plan  2) Answer 3 more questions\n> ")
			if !in.Scan() {
				os.Exit(0)
			}
			if strings.TrimSpace(in.Text()) == "2" {
				phase := string(elicit.PhaseSecondary)
				if state.Phase == elicit.PhaseSecondary {
					phase = string(elicit.PhaseTertiary)
				}
				batch, err := followUp.Run(ctx, goal, plangen.AnswerSet(state.Answers), phase)
				if err != nil {
					log.Printf("follow-up questions unavailable: %v", err)
					batch = nil
				}
				if batch != nil {
					next, terr := elicit.Transition(state, elicit.NextRound{Batch: batch})
					if terr == nil {
						state = next
						continue
					}
					log.Printf("cannot enter next round: %v", terr)
				}
			}
			next, err := elicit.Transition(state, elicit.Proceed{})
			if err != nil {
				log.Fatal(err)
			}
			state = next
		}
	}
	return state
}

func askWeeks(in *bufio.Scanner, estimate *plangen.TimelineEstimate) int {
	low := estimate.MinimumWeeks - 2
	if low < 1 {
		low = 1
	}
	fmt.Printf("How many weeks do you want to spend? [%d-%d, enter for %d]\n> ",
		low, estimate.MaximumWeeks, estimate.SuggestedWeeks)
	if !in.Scan() {
		os.Exit(0)
	}
	line := strings.TrimSpace(in.Text())
	if line == "" {
		return estimate.SuggestedWeeks
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < low {
		return estimate.SuggestedWeeks
	}
	if n > estimate.MaximumWeeks {
		return estimate.MaximumWeeks
	}
	return n
}

func printPlan(plan *plangen.Plan) {
	fmt.Printf("\n%s\n", plan.Summary)
	if plan.Fallback {
		fmt.Println("(generic plan - the generation service was unavailable)")
	}
	for i, phase := range plan.Phases {
		fmt.Printf("\nPhase %d: %s\n%s\n", i+1, phase.Title, phase.Description)
		for _, task := range phase.Tasks {
			fmt.Printf("  - %s: %s\n", task.Title, task.Description)
			for _, sub := range task.Subtasks {
				fmt.Printf("      * %s\n", sub)
			}
		}
	}
	fmt.Printf("\nEstimated timeline: %s (minimum %s)\n", plan.EstimatedTimeline, plan.MinimumTimeline)
}
