package domain

// LoyaltyState состояние клиента в программе лояльности
type LoyaltyState struct {
	// ProgressPercent прогресс текущего цикла, 0-100
	ProgressPercent float64
	// Remaining сколько моек осталось до бесплатной, всегда в [1, threshold]
	Remaining int
	// FreeOnNextVisit следующая мойка будет бесплатной
	FreeOnNextVisit bool
}

// Loyalty вычисляет состояние программы лояльности по счётчику визитов.
// Чистая функция: счётчик она не изменяет, инкремент выполняет вызывающий код.
//
// Счётчик, кратный threshold, означает только что завершённый цикл:
// Remaining снова равен threshold, а не нулю.
func Loyalty(visits, threshold int) LoyaltyState {
	if threshold <= 0 {
		threshold = LoyaltyThreshold
	}
	if visits < 0 {
		visits = 0
	}

	inCycle := visits % threshold

	progress := float64(inCycle) / float64(threshold) * 100
	if progress > 100 {
		progress = 100
	}

	return LoyaltyState{
		ProgressPercent: progress,
		Remaining:       threshold - inCycle,
		FreeOnNextVisit: (visits+1)%threshold == 0,
	}
}
