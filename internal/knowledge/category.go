package knowledge

// Category challenge topic
type Category string

const (
	CategoryWeb       Category = "web"
	CategoryCrypto    Category = "crypto"
	CategoryPwn       Category = "pwn"
	CategoryReverse   Category = "reverse"
	CategoryForensics Category = "forensics"
	CategoryOSINT     Category = "osint"
	CategoryMisc      Category = "misc"
)

// Categories all categories in display order
func Categories() []Category {
	return []Category{
		CategoryWeb,
		CategoryCrypto,
		CategoryPwn,
		CategoryReverse,
		CategoryForensics,
		CategoryOSINT,
		CategoryMisc,
	}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryWeb, CategoryCrypto, CategoryPwn, CategoryReverse,
		CategoryForensics, CategoryOSINT, CategoryMisc:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
