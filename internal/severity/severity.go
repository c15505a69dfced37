package severity

import (
	"fmt"
	"math"
)

// Уровни серьёзности тревоги
const (
	LevelLow      = "low"
	LevelMedium   = "medium"
	LevelHigh     = "high"
	LevelCritical = "critical"
)

// Потолки нормализации сырых метрик: каждая метрика достигает максимума
// своего вклада на этих значениях.
const (
	tapCountCeiling  = 50.0 // тапов всего
	frequencyCeiling = 5.0  // тапов в секунду
	reporterCeiling  = 10.0 // уникальных свидетелей
)

// Пороги эскалации. Пересечение порога расширяет радиус рассылки.
var escalationEdges = [...]int{30, 50, 80}

// Weights задаёт веса метрик при расчёте оценки серьёзности.
// Сумма весов должна быть равна 100.
type Weights struct {
	Tap       int
	Frequency int
	Reporter  int
}

// DefaultWeights — вариант с доминирующим весом уникальных свидетелей:
// несколько независимых подтверждений важнее объёма тапов.
var DefaultWeights = Weights{Tap: 20, Frequency: 30, Reporter: 50}

// Validate проверяет, что веса образуют корректную политику
func (w Weights) Validate() error {
	if w.Tap < 0 || w.Frequency < 0 || w.Reporter < 0 {
		return fmt.Errorf("severity weights must be non-negative, got %d/%d/%d", w.Tap, w.Frequency, w.Reporter)
	}
	if sum := w.Tap + w.Frequency + w.Reporter; sum != 100 {
		return fmt.Errorf("severity weights must sum to 100, got %d", sum)
	}
	return nil
}

// Score вычисляет оценку серьёзности 0-100 из количества тапов, частоты тапов
// (в секунду) и числа уникальных свидетелей. Каждая метрика нормализуется и
// ограничивается своим весом независимо, поэтому ни один фактор не может
// превысить свой бюджет.
func Score(tapCount int, tapFrequency float64, uniqueReporters int, w Weights) int {
	tapScore := math.Min(float64(tapCount)/tapCountCeiling, 1) * float64(w.Tap)
	frequencyScore := math.Min(tapFrequency/frequencyCeiling, 1) * float64(w.Frequency)
	reporterScore := math.Min(float64(uniqueReporters)/reporterCeiling, 1) * float64(w.Reporter)

	return int(math.Round(tapScore + frequencyScore + reporterScore))
}

// Level возвращает уровень серьёзности для оценки.
// Границы включаются в верхний уровень: 30 — уже medium.
func Level(score int) string {
	switch {
	case score >= 80:
		return LevelCritical
	case score >= 50:
		return LevelHigh
	case score >= 30:
		return LevelMedium
	default:
		return LevelLow
	}
}

// NotificationRadiusKm возвращает радиус рассылки уведомлений в километрах.
// Радиус не убывает с ростом оценки.
func NotificationRadiusKm(score int) float64 {
	switch {
	case score >= 80:
		return 15
	case score >= 50:
		return 10
	case score >= 30:
		return 5
	default:
		return 3
	}
}

// EscalationEdge возвращает старший порог, пересечённый при переходе
// oldScore -> newScore (oldScore < edge <= newScore), и признак пересечения.
// Повторные обновления выше порога пересечение не сообщают.
func EscalationEdge(oldScore, newScore int) (int, bool) {
	for i := len(escalationEdges) - 1; i >= 0; i-- {
		edge := escalationEdges[i]
		if oldScore < edge && newScore >= edge {
			return edge, true
		}
	}
	return 0, false
}
