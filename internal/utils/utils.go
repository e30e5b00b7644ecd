package utils

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime number that is equal to or bigger than n.
// Anything below 2 gives 2.
func NextPrime(n int64) int64 {
	if n <= 2 {
		return 2
	}

	for !IsPrime(n) {
		n++
	}

	return n
}
