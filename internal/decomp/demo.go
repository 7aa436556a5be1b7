package decomp

// Demo returns a small two-view dictionary used when no data is supplied:
// a PCoA of nine samples and a biplot of two taxa.
func Demo() Dict {
	pcoa, err := NewModel("pcoa",
		[]string{"PC.354", "PC.355", "PC.356", "PC.481", "PC.593", "PC.607", "PC.634", "PC.635", "PC.636"},
		[][]float32{
			{0.280399, -0.006013, 0.023485},
			{0.228820, -0.130142, -0.287149},
			{0.181879, 0.244931, 0.042439},
			{0.024213, 0.228637, 0.199638},
			{0.275106, -0.151823, 0.104153},
			{-0.091330, 0.424147, -0.135627},
			{-0.349339, -0.120788, 0.115274},
			{-0.237661, 0.046053, -0.138136},
			{-0.276542, -0.144964, 0.066647},
		},
		[]float32{26.68, 16.25, 13.77},
		[]string{"SampleID", "Treatment", "DOB"},
		[][]string{
			{"PC.354", "Control", "20061218"},
			{"PC.355", "Control", "20061218"},
			{"PC.356", "Control", "20061126"},
			{"PC.481", "Control", "20070314"},
			{"PC.593", "Control", "20071210"},
			{"PC.607", "Fast", "20071112"},
			{"PC.634", "Fast", "20080116"},
			{"PC.635", "Fast", "20080116"},
			{"PC.636", "Fast", "20080116"},
		},
	)
	if err != nil {
		panic(err)
	}
	biplot, err := NewModel("biplot",
		[]string{"tax_1", "tax_2"},
		[][]float32{
			{-1, -0.144964, 0.066647},
			{-0.237661, 0.046053, -0.138136},
		},
		[]float32{26.68, 16.25, 13.77},
		[]string{"SampleID", "Gram"},
		[][]string{
			{"tax_1", "1"},
			{"tax_2", "0"},
		},
	)
	if err != nil {
		panic(err)
	}
	return Dict{
		"pcoa":   NewView(pcoa),
		"biplot": NewView(biplot),
	}
}
