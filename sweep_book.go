package tradecore

// SweepBookCommand re-crosses the resting book without an incoming order,
// trading best bid against best ask while they still overlap, and settles
// every resulting trade. Uses the same pricing rule and settlement path as
// order placement.
type SweepBookCommand struct{}

type SweepBookResult struct {
	TradeCount int
}

func (SweepBookCommand) Execute(ctx *CommandContext) (*SweepBookResult, error) {
	book := ctx.Books.Get()

	trades, err := ctx.Matcher.MatchBook(book)
	if err != nil {
		return nil, err
	}

	for _, trade := range trades {
		if err := settleTrade(ctx, trade); err != nil {
			return nil, err
		}
	}

	ctx.Books.Save(book)

	return &SweepBookResult{TradeCount: len(trades)}, nil
}
