package app

import "github.com/prometheus/client_golang/prometheus"

// registerStoreGauges exposes collection sizes, read at scrape time.
func registerStoreGauges(reg prometheus.Registerer, st Store) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "storeapi",
			Name:      "products",
			Help:      "Products currently held in the store",
		}, func() float64 {
			n, _ := st.Counts()
			return float64(n)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "storeapi",
			Name:      "orders",
			Help:      "Orders currently held in the store",
		}, func() float64 {
			_, n := st.Counts()
			return float64(n)
		}),
	)
}
