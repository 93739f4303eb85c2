package mediacover

// resizeTargets maps each category to its ordered resize heights. Categories
// absent from the table are cached at original resolution only. Built once;
// never mutated after init.
var resizeTargets = map[Category][]int{
	CategoryPoster:     {500, 250},
	CategoryHeadshot:   {500, 250},
	CategoryBanner:     {70, 35},
	CategoryFanart:     {360, 180},
	CategoryScreenshot: {360, 180},
}

// ResizeHeights returns the target heights for a category, largest first.
// Unknown categories return nil, which callers treat as "no resize work".
func ResizeHeights(category Category) []int {
	return resizeTargets[category]
}
