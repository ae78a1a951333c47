package lattice

// Delannoy returns the Delannoy number D(m, n): the count of lattice
// paths across an m-by-n rectangle using right, up, and diagonal unit
// steps. It is the closed-form counterpart of Count for a subgrid
// spanning m columns and n rows of travel, and exists as a cross-check
// that stays cheap where the enumeration is exponential.
//
// Computed with the standard recurrence
// D(m,n) = D(m-1,n) + D(m,n-1) + D(m-1,n-1), D(0,k) = D(k,0) = 1.
// Values overflow int64 past roughly D(30,30); the recursive
// enumeration is infeasible long before that.
func Delannoy(m, n int) int64 {
	if m < 0 || n < 0 {
		return 0
	}
	prev := make([]int64, n+1)
	curr := make([]int64, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = 1
	}
	for i := 1; i <= m; i++ {
		curr[0] = 1
		for j := 1; j <= n; j++ {
			curr[j] = prev[j] + curr[j-1] + prev[j-1]
		}
		prev, curr = curr, prev
	}
	return prev[n]
}
