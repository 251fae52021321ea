// Package exporter serializes the pipeline outputs to the analytics output
// directory.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers, streaming,
// and UTF-8 BOM for Excel compatibility.
//
// ReportExporter: Writes the seven aggregate tables, streams the full enriched
// event set to raw_data_<year>.csv, and writes the KPI summary JSON.
//
// WorkbookExporter: Writes all aggregate tables into a single Excel workbook,
// one sheet per table.
//
// Rounded ratio columns are rendered with exactly two decimal places; minute
// totals keep full precision. The first write failure is a storage error and
// the run performs no further exports.
//
// Example usage:
//
//	reports := exporter.NewReportExporter(paths)
//	if err := reports.WriteDailySummary(tables.Daily); err != nil {
//	    return err
//	}
//
//	workbook := exporter.NewWorkbookExporter(paths)
//	err := workbook.WriteWorkbook(tables)
package exporter
