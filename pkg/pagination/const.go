package pagination

// PageSize is the fixed obituary page size.
const PageSize = 12

// linkWindow is how many page links show on each side of the current page
// before ellipsis compression kicks in.
const linkWindow = 1
