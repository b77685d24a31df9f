package entity

import "fmt"

type LocatorStrategy string

const (
	ByText  LocatorStrategy = "text"
	ByRole  LocatorStrategy = "role"
	ByCSS   LocatorStrategy = "css"
	ByXPath LocatorStrategy = "xpath"
)

// Locator identifies one element on the page.
// For ByRole, Role holds the ARIA role and Value the accessible name.
type Locator struct {
	By    LocatorStrategy
	Role  string
	Value string
	Exact bool
}

func Text(value string, exact bool) Locator {
	return Locator{By: ByText, Value: value, Exact: exact}
}

func Role(role, name string) Locator {
	return Locator{By: ByRole, Role: role, Value: name}
}

func CSS(selector string) Locator {
	return Locator{By: ByCSS, Value: selector}
}

func XPath(expr string) Locator {
	return Locator{By: ByXPath, Value: expr}
}

func (l Locator) Validate() error {
	switch l.By {
	case ByText, ByCSS, ByXPath:
		if l.Value == "" {
			return fmt.Errorf("%w: %s locator without value", ErrInvalidLocator, l.By)
		}
	case ByRole:
		if l.Role == "" {
			return fmt.Errorf("%w: role locator without role", ErrInvalidLocator)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidLocator, l.By)
	}
	return nil
}

func (l Locator) String() string {
	switch l.By {
	case ByRole:
		if l.Value == "" {
			return fmt.Sprintf("role=%s", l.Role)
		}
		return fmt.Sprintf("role=%s[name=%q]", l.Role, l.Value)
	case ByText:
		if l.Exact {
			return fmt.Sprintf("text=%q", l.Value)
		}
		return fmt.Sprintf("text=%s", l.Value)
	default:
		return fmt.Sprintf("%s=%s", l.By, l.Value)
	}
}
