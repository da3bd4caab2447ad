package classifier

import "math/rand"

// f1Score computes the F1 score for the positive class.
func f1Score(yTrue, yPred []int) float64 {
	var tp, fp, fn int
	for i := range yTrue {
		switch {
		case yPred[i] == 1 && yTrue[i] == 1:
			tp++
		case yPred[i] == 1 && yTrue[i] == 0:
			fp++
		case yPred[i] == 0 && yTrue[i] == 1:
			fn++
		}
	}
	if tp == 0 {
		return 0
	}
	precision := float64(tp) / float64(tp+fp)
	recall := float64(tp) / float64(tp+fn)
	return 2 * precision * recall / (precision + recall)
}

// stratifiedSplit shuffles each class separately and holds out testFrac of
// every class, preserving label balance across the split.
func stratifiedSplit(y []int, testFrac float64, rng *rand.Rand) (trainIdx, testIdx []int) {
	byClass := map[int][]int{}
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}

	for _, label := range []int{0, 1} {
		indices := byClass[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		nTest := int(float64(len(indices)) * testFrac)
		if nTest == 0 && len(indices) > 1 {
			nTest = 1
		}
		testIdx = append(testIdx, indices[:nTest]...)
		trainIdx = append(trainIdx, indices[nTest:]...)
	}
	return trainIdx, testIdx
}

// stratifiedFolds assigns every sample to one of k folds, distributing each
// class round-robin after a seeded shuffle.
func stratifiedFolds(y []int, k int, rng *rand.Rand) [][]int {
	folds := make([][]int, k)
	byClass := map[int][]int{}
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}
	for _, label := range []int{0, 1} {
		indices := byClass[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		for pos, idx := range indices {
			folds[pos%k] = append(folds[pos%k], idx)
		}
	}
	return folds
}

// subset gathers the rows and labels at the given indices.
func subset(X [][]float64, y []int, indices []int) ([][]float64, []int) {
	subX := make([][]float64, len(indices))
	subY := make([]int, len(indices))
	for pos, i := range indices {
		subX[pos] = X[i]
		subY[pos] = y[i]
	}
	return subX, subY
}
