package strategy

import "IndicatorScope/internal/model"

// Mode selects how fetched series are derived into the analysis result.
type Mode int

const (
	// Filter drops missing observations from every series independently.
	Filter Mode = iota
	// Ratio divides the first series by the second, year by year.
	Ratio
	// Scale filters, then divides the last series by ScaleFactor.
	Scale
)

func (m Mode) String() string {
	switch m {
	case Filter:
		return "filter"
	case Ratio:
		return "ratio"
	case Scale:
		return "scale"
	default:
		return "unknown"
	}
}

// Analysis describes one analysis kind.
type Analysis struct {
	Kind        model.AnalysisKind
	Title       string
	Indicators  []string
	Mode        Mode
	ScaleFactor float64
	Labels      []string
}

// Catalog defines the eight analyses, indexed by kind-1.
var Catalog = [model.KindCount]Analysis{
	{
		Kind:       model.KindEmissionsEnergyPollution,
		Title:      "CO2 Emissions vs Energy Use vs PM2.5 Air Pollution",
		Indicators: []string{"EN.ATM.CO2E.PC", "EG.USE.PCAP.KG.OE", "EN.ATM.PM25.MC.M3"},
		Mode:       Filter,
		Labels: []string{
			"CO2 emissions (metric tons per capita)",
			"Energy use (kg oil eq. per capita)",
			"PM2.5 air pollution (ug/m3)",
		},
	},
	{
		Kind:       model.KindPollutionForest,
		Title:      "PM2.5 Air Pollution vs Forest Area",
		Indicators: []string{"EN.ATM.PM25.MC.M3", "AG.LND.FRST.ZS"},
		Mode:       Filter,
		Labels:     []string{"PM2.5 air pollution (ug/m3)", "Forest area (% of land)"},
	},
	{
		Kind:       model.KindEmissionsGDPRatio,
		Title:      "Ratio of CO2 Emissions & GDP per Capita",
		Indicators: []string{"EN.ATM.CO2E.PC", "NY.GDP.PCAP.CD"},
		Mode:       Ratio,
		Labels:     []string{"CO2 / GDP per capita"},
	},
	{
		Kind:       model.KindAverageForest,
		Title:      "Average Forest Area",
		Indicators: []string{"AG.LND.FRST.ZS"},
		Mode:       Filter,
		Labels:     []string{"Forest area (% of land)"},
	},
	{
		Kind:       model.KindAverageEducationSpend,
		Title:      "Average Gov. Expenditure on Education",
		Indicators: []string{"SE.XPD.TOTL.GD.ZS"},
		Mode:       Filter,
		Labels:     []string{"Gov. expenditure on education (% of GDP)"},
	},
	{
		Kind:        model.KindBedsHealthSpend,
		Title:       "Hospital Beds vs Current Health Expenditure per 1000",
		Indicators:  []string{"SH.MED.BEDS.ZS", "SH.XPD.CHEX.PC.CD"},
		Mode:        Scale,
		ScaleFactor: 1000,
		Labels: []string{
			"Hospital beds (per 1,000 people)",
			"Health expenditure per capita (per 1,000 US$)",
		},
	},
	{
		Kind:       model.KindHealthSpendMortality,
		Title:      "Current Health Expenditure per Capita vs Mortality Rate",
		Indicators: []string{"SH.XPD.CHEX.PC.CD", "SP.DYN.IMRT.IN"},
		Mode:       Filter,
		Labels: []string{
			"Health expenditure per capita (US$)",
			"Infant mortality (per 1,000 live births)",
		},
	},
	{
		Kind:       model.KindEducationHealthRatio,
		Title:      "Ratio of Gov. Expenditure on Education & Current Health Expenditure",
		Indicators: []string{"SE.XPD.TOTL.GD.ZS", "SH.XPD.CHEX.GD.ZS"},
		Mode:       Ratio,
		Labels:     []string{"Education / health expenditure"},
	},
}

// Lookup returns the catalog entry for kind.
func Lookup(kind model.AnalysisKind) (Analysis, bool) {
	if !kind.Valid() {
		return Analysis{}, false
	}
	return Catalog[kind-1], true
}
