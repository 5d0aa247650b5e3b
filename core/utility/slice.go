package utility

// Contains kiểm tra một item có nằm trong slice không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
