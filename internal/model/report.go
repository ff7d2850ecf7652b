package model

// FileStats counts the declarations of one summarized file.
type FileStats struct {
	Path       Path
	Classes    int
	Methods    int
	Functions  int
	Attributes int
}

// Total returns the number of declarations counted.
func (s FileStats) Total() int {
	return s.Classes + s.Methods + s.Functions + s.Attributes
}

// StatsOf counts what a renderer would show for file under opts.
func StatsOf(file FileModel, opts Options) FileStats {
	stats := FileStats{Path: file.Path}

	if opts.IncludeClasses {
		stats.Classes = len(file.Classes)

		for _, class := range file.Classes {
			stats.Methods += len(class.Methods)

			if !opts.NoAttributes {
				stats.Attributes += len(class.Attributes)
			}
		}
	}

	if opts.IncludeFunctions {
		stats.Functions = len(file.Functions)
	}

	return stats
}
