package strategy

import "baccarat_backend/internal/model"

var catalogue = map[model.StrategyType]model.StrategyInfo{
	model.StrategyLabouchere: {
		Name:        "Labouchere (Cancellation)",
		Description: "Bet sum of first and last numbers. Win: remove both. Lose: add amount to end.",
		Risk:        model.RiskHigh,
	},
	model.StrategyMartingale: {
		Name:        "Martingale",
		Description: "Double bet after each loss. Reset to base after win.",
		Risk:        model.RiskHigh,
	},
	model.StrategyFibonacci: {
		Name:        "Fibonacci",
		Description: "Follow Fibonacci sequence. Move forward on loss, back 2 on win.",
		Risk:        model.RiskMedium,
	},
	model.StrategyParoli: {
		Name:        "Paroli (Reverse Martingale)",
		Description: "Double bet after win up to 3 wins, then reset.",
		Risk:        model.RiskLow,
	},
	model.StrategyOneThreeTwoSix: {
		Name:        "1-3-2-6",
		Description: "Follow 1-3-2-6 sequence on wins. Reset on any loss.",
		Risk:        model.RiskLow,
	},
	model.StrategyOscarsGrind: {
		Name:        "Oscar's Grind",
		Description: "Increase by 1 unit after win. Goal: 1 unit profit per session.",
		Risk:        model.RiskLow,
	},
	model.StrategyFlat: {
		Name:        "Flat Betting",
		Description: "Same bet amount every hand. Control strategy.",
		Risk:        model.RiskLow,
	},
	model.StrategyDAlembert: {
		Name:        "D'Alembert",
		Description: "Increase by 1 unit after loss, decrease by 1 after win.",
		Risk:        model.RiskMedium,
	},
}

// Catalogue lists every progression in display order.
func Catalogue() []model.StrategyInfo {
	infos := make([]model.StrategyInfo, 0, len(model.StrategyTypes))
	for _, t := range model.StrategyTypes {
		info := catalogue[t]
		info.Type = t
		infos = append(infos, info)
	}
	return infos
}

func Describe(t model.StrategyType) (model.StrategyInfo, bool) {
	info, ok := catalogue[t]
	info.Type = t
	return info, ok
}
