// Package xlsx reads Excel workbooks as a tabular.Source.
//
// Sheets are listed in workbook order and streamed row by row. Cells come
// out typed: numbers as int64 when integral and float64 otherwise, numbers
// formatted as dates as time.Time (honouring the 1904 date system),
// booleans as bool, text as string and blank cells as nil.
package xlsx
