package analysis

import (
	"math"
	"sort"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

// Ranking sizes used by TopPlayers.
const (
	TopMarketCount = 10
	TopTraderCount = 5
)

// YearLeader names the largest consumer and producer of one year by
// monthly mean.
type YearLeader struct {
	Year     int    `json:"year"`
	Consumer string `json:"consumer"`
	Producer string `json:"producer"`
}

// Players describes who dominates the market.
type Players struct {
	Consumers []models.CountryValue `json:"top_consumers"`
	Producers []models.CountryValue `json:"top_producers"`
	// Shares are the percent of the summed country means held by the
	// ranked consumers and producers.
	ConsumerShare float64 `json:"consumer_share_pct"`
	ProducerShare float64 `json:"producer_share_pct"`
	// NetPositions is mean supply minus mean demand, in demand order.
	NetPositions []models.CountryValue `json:"net_positions"`
	Exporters    []models.CountryValue `json:"top_exporters"`
	Importers    []models.CountryValue `json:"top_importers"`
	Leaders      []YearLeader          `json:"yearly_leaders"`
}

// TopPlayers ranks consumers, producers and net traders and finds the
// leader of every year.
func TopPlayers(demand, supply *models.SeriesTable) (Players, error) {
	var p Players
	if demand.Empty() || supply.Empty() {
		return p, nil
	}

	dMeans, sMeans := demand.Means(), supply.Means()
	p.Consumers = models.Largest(dMeans, TopMarketCount)
	p.Producers = models.Largest(sMeans, TopMarketCount)
	p.ConsumerShare = share(p.Consumers, dMeans)
	p.ProducerShare = share(p.Producers, sMeans)

	p.NetPositions = NetPositions(demand, supply)
	var surplus, deficit []models.CountryValue
	for _, v := range p.NetPositions {
		switch {
		case v.Value > 0:
			surplus = append(surplus, v)
		case v.Value < 0:
			deficit = append(deficit, v)
		}
	}
	p.Exporters = models.Largest(surplus, TopTraderCount)
	p.Importers = models.Smallest(deficit, TopTraderCount)

	dLeaders, err := yearLeaders(demand)
	if err != nil {
		return p, err
	}
	sLeaders, err := yearLeaders(supply)
	if err != nil {
		return p, err
	}
	for _, year := range sortedYears(dLeaders) {
		p.Leaders = append(p.Leaders, YearLeader{
			Year:     year,
			Consumer: dLeaders[year],
			Producer: sLeaders[year],
		})
	}
	return p, nil
}

func share(top, all []models.CountryValue) float64 {
	var part, whole float64
	for _, v := range top {
		part += v.Value
	}
	for _, v := range all {
		if !math.IsNaN(v.Value) {
			whole += v.Value
		}
	}
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// yearLeaders maps each year to the country with the highest mean over
// that year's months.
func yearLeaders(t *models.SeriesTable) (map[int]string, error) {
	groups, err := groupByYear(t)
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(groups))
	for _, g := range groups {
		means := make([]models.CountryValue, len(t.Countries))
		for i, country := range t.Countries {
			means[i] = models.CountryValue{Country: country, Value: models.RowMean(pick(t.Values[i], g.cols))}
		}
		if top := models.Largest(means, 1); len(top) == 1 {
			out[g.year] = top[0].Country
		}
	}
	return out, nil
}

func sortedYears(m map[int]string) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
