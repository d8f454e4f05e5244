package binclass

import (
	"fmt"
	"math"
	"sort"
)

// ROCPoint is one point on the receiver operating characteristic curve.
type ROCPoint struct {
	FPR       float64 // false positive rate
	TPR       float64 // true positive rate
	Threshold float64 // score at or above which a sample counts as positive
}

// PRPoint is one point on the precision-recall curve.
type PRPoint struct {
	Precision float64
	Recall    float64
	Threshold float64
}

// AUC computes the area under the ROC curve as the Mann-Whitney rank
// statistic: the probability that a randomly chosen positive sample is
// scored above a randomly chosen negative one. Tied scores get the average
// of the ranks they span, so the result is invariant under any strictly
// monotonic transform of the probabilities.
func AUC(probs []float64, labels []int) (float64, error) {
	pos, neg, err := classCounts(probs, labels)
	if err != nil {
		return 0, err
	}

	order := sortedByScore(probs, true)

	// Sum of positive-sample ranks, averaging ranks across tie groups.
	// Ranks are 1-based over the ascending order.
	var rankSum float64
	for i := 0; i < len(order); {
		j := i
		for j < len(order) && probs[order[j]] == probs[order[i]] {
			j++
		}
		midrank := float64(i+j+1) / 2 // average of ranks i+1..j
		for k := i; k < j; k++ {
			if labels[order[k]] == 1 {
				rankSum += midrank
			}
		}
		i = j
	}

	p := float64(pos)
	return (rankSum - p*(p+1)/2) / (p * float64(neg)), nil
}

// ROCCurve returns the ROC curve with one point per distinct probability,
// ordered by descending threshold, anchored at (0, 0). A point's counts
// include every sample scored at or above its threshold.
func ROCCurve(probs []float64, labels []int) ([]ROCPoint, error) {
	pos, neg, err := classCounts(probs, labels)
	if err != nil {
		return nil, err
	}

	order := sortedByScore(probs, false)

	points := []ROCPoint{{FPR: 0, TPR: 0, Threshold: math.Inf(1)}}
	tp, fp := 0, 0
	for i := 0; i < len(order); {
		j := i
		for j < len(order) && probs[order[j]] == probs[order[i]] {
			if labels[order[j]] == 1 {
				tp++
			} else {
				fp++
			}
			j++
		}
		points = append(points, ROCPoint{
			FPR:       float64(fp) / float64(neg),
			TPR:       float64(tp) / float64(pos),
			Threshold: probs[order[i]],
		})
		i = j
	}
	return points, nil
}

// PRCurve returns the precision-recall curve with one point per distinct
// probability, ordered by descending threshold (ascending recall), anchored
// at recall 0 with precision 1.
func PRCurve(probs []float64, labels []int) ([]PRPoint, error) {
	pos, _, err := classCounts(probs, labels)
	if err != nil {
		return nil, err
	}

	order := sortedByScore(probs, false)

	points := []PRPoint{{Precision: 1, Recall: 0, Threshold: math.Inf(1)}}
	tp, fp := 0, 0
	for i := 0; i < len(order); {
		j := i
		for j < len(order) && probs[order[j]] == probs[order[i]] {
			if labels[order[j]] == 1 {
				tp++
			} else {
				fp++
			}
			j++
		}
		points = append(points, PRPoint{
			Precision: float64(tp) / float64(tp+fp),
			Recall:    float64(tp) / float64(pos),
			Threshold: probs[order[i]],
		})
		i = j
	}
	return points, nil
}

// AveragePrecision summarizes the precision-recall curve as the
// recall-weighted mean of precisions: sum over points of
// (recall_n - recall_n-1) * precision_n.
func AveragePrecision(probs []float64, labels []int) (float64, error) {
	points, err := PRCurve(probs, labels)
	if err != nil {
		return 0, err
	}

	var ap float64
	for i := 1; i < len(points); i++ {
		ap += (points[i].Recall - points[i-1].Recall) * points[i].Precision
	}
	return ap, nil
}

// classCounts validates the inputs and returns the positive and negative
// label counts, requiring at least one of each.
func classCounts(probs []float64, labels []int) (pos, neg int, err error) {
	if err := validateProbs(probs); err != nil {
		return 0, 0, err
	}
	if err := validateLabels("labels", labels); err != nil {
		return 0, 0, err
	}
	if len(probs) != len(labels) {
		return 0, 0, errLengthMismatch("probs", len(probs), len(labels))
	}

	for _, l := range labels {
		if l == 1 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return 0, 0, fmt.Errorf("%w: %d positive, %d negative", ErrDegenerateLabels, pos, neg)
	}
	return pos, neg, nil
}

// sortedByScore returns sample indices ordered by probability.
func sortedByScore(probs []float64, ascending bool) []int {
	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if ascending {
			return probs[order[a]] < probs[order[b]]
		}
		return probs[order[a]] > probs[order[b]]
	})
	return order
}
