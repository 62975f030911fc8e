package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/dividash"
	"github.com/etnz/dividash/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his dividend income and how reinvesting it
			could compound over the years. Devise a plan of questions to ask the experts and come
			up with the best response to the user's request.

			The user will assume that you know about his tickers, check the holdings first to
			understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the dividend analyst expert. It can list the user's
// holdings, run DRIP simulations and project dividend growth, all computed
// locally on the given records.
func NewAnalyst(records dividash.Records) *Expert {
	lib := []Function{
		listHoldings(records),
		runDrip(),
		projectDividend(records),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the dividend Analyst. He can read the user's dividend records,
		run Dividend Reinvestment Plan (DRIP) simulations, and project dividend growth.
		Ask the Analyst whenever you need an actual figure about the user's holdings or
		a projection; he computes them, he never guesses.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a dividend analyst in charge of the user's dividend records.
				You know how to use the Tools to compute relevant figures:
				  - list of holdings and their share counts
				  - DRIP simulations given a starting position and growth assumptions
				  - simple dividend growth projections for a recorded ticker
				Always report the figures returned by the tools, never invent numbers.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func listHoldings(records dividash.Records) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_holdings",
			Description: "List the user's holdings: every ticker in the dividend records with its total share count.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "list_holdings", renderer.TilesMarkdown(records.SharesByTicker()), nil)
		},
	}
}

func runDrip() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "run_drip_simulation",
			Description: "Simulate a Dividend Reinvestment Plan: yearly compounding of a share position " +
				"under periodic dividend reinvestment, share price growth and dividend growth.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"shares":          {Type: genai.TypeNumber, Description: "Initial number of shares."},
					"price":           {Type: genai.TypeNumber, Description: "Current share price."},
					"dividend":        {Type: genai.TypeNumber, Description: "Annual dividend per share."},
					"dividend_growth": {Type: genai.TypeNumber, Description: "Annual dividend growth rate in percent."},
					"price_growth":    {Type: genai.TypeNumber, Description: "Annual share price growth rate in percent."},
					"years":           {Type: genai.TypeNumber, Description: "Years to project, defaults to 15."},
					"frequency":       {Type: genai.TypeNumber, Description: "Dividend payments per year, defaults to 4."},
				},
				Required: []string{"shares", "price", "dividend"},
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			in := dividash.SimulationInput{
				InitialShares:  number(args, "shares", 0),
				SharePrice:     number(args, "price", 0),
				AnnualDividend: number(args, "dividend", 0),
				DividendGrowth: dividash.Percent(number(args, "dividend_growth", 0)),
				PriceGrowth:    dividash.Percent(number(args, "price_growth", 0)),
				Years:          int(number(args, "years", 15)),
				Frequency:      int(number(args, "frequency", 4)),
			}
			result, err := dividash.Simulate(in)
			if err != nil {
				return respond(id, "run_drip_simulation", "", err)
			}
			summary, err := dividash.Summarize(result)
			if err != nil {
				return respond(id, "run_drip_simulation", "", err)
			}
			md := renderer.DripMarkdown("", result, summary, "$", time.Now().Year())
			return respond(id, "run_drip_simulation", md, nil)
		},
	}
}

func projectDividend(records dividash.Records) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "project_dividend",
			Description: "Project a recorded ticker's dividend by a fixed yearly growth rate, " +
				"without reinvestment, seeded by its first recorded net dividend.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {Type: genai.TypeString, Description: "The ticker to project, as recorded in the data file."},
					"growth": {Type: genai.TypeNumber, Description: "Annual growth rate in percent, defaults to 4."},
					"years":  {Type: genai.TypeNumber, Description: "Years to project, defaults to 15."},
				},
				Required: []string{"ticker"},
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ticker, _ := args["ticker"].(string)
			seed, ok := records.InitialDividend(ticker)
			if !ok {
				return respond(id, "project_dividend", "", fmt.Errorf("no recorded dividend for ticker %q", ticker))
			}
			growth := dividash.Percent(number(args, "growth", 4))
			years := int(number(args, "years", 15))
			projected := dividash.ProjectDividends(seed.AsFloat(), growth, time.Now().Year(), years)
			md := renderer.ProjectionMarkdown(ticker, growth, projected, dividash.CurrencyFor(ticker).Grapheme)
			return respond(id, "project_dividend", md, nil)
		},
	}
}

// number reads a numeric argument, falling back to a default when absent.
func number(args map[string]any, key string, fallback float64) float64 {
	if v, ok := args[key].(float64); ok {
		return v
	}
	return fallback
}

func respond(id, name, output string, err error) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		resp.Response["error"] = err.Error()
		return resp
	}
	resp.Response["output"] = output
	return resp
}
