package roster

import "errors"

// ErrSourceNotFound indicates the input workbook does not exist.
var ErrSourceNotFound = errors.New("source workbook not found")

// ErrCourseListNotFound indicates the course list file cannot be read.
var ErrCourseListNotFound = errors.New("course list not found")

// ErrCourseListEmpty indicates the course list file holds no usable names.
var ErrCourseListEmpty = errors.New("course list is empty")
