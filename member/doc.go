// Package member provides the attribute descriptors stored in class maps.
//
// Each descriptor validates and normalizes the values assigned to one
// attribute and supplies the attribute's default:
//
//	age := member.NewRange(member.Low(0), member.High(150))
//	v, err := age.Validate(42)     // 42, nil
//	_, err = age.Validate(-1)      // *ValidationError
//
// Descriptors are reference counted through the embedded Base so that class
// maps can account for ownership. They carry no per-instance state and are
// safe for concurrent use.
package member
