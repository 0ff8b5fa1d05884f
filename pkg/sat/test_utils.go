package sat

import "math/rand/v2"

// GenerateSATInstance builds a random instance where each variable appears in a clause with probability 1/2
func GenerateSATInstance(literals uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: literals,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		satInstance.Clauses[i] = make([]int64, 0, literals)
		for j := range literals {
			if rand.Float32() < 0.5 {
				satInstance.Clauses[i] = append(satInstance.Clauses[i], randomSign()*(1+int64(j)))
			}
		}

		if len(satInstance.Clauses[i]) == 0 {
			satInstance.Clauses[i] = append(satInstance.Clauses[i], randomSign()*(1+rand.Int64N(int64(literals))))
		}
	}

	return satInstance
}

func randomSign() int64 {
	if rand.Float32() < 0.5 {
		return -1
	}
	return 1
}
