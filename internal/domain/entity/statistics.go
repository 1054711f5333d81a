package entity

// MarketplaceCounts holds record counts per collection.
type MarketplaceCounts struct {
	Products         int64 `json:"totalProducts"`
	Sellers          int64 `json:"totalSellers"`
	Buyers           int64 `json:"totalBuyers"`
	Orders           int64 `json:"totalOrders"`
	Transactions     int64 `json:"totalTransactions"`
	BuyerComplaints  int64 `json:"buyerComplaints"`
	SellerComplaints int64 `json:"sellerComplaints"`
}
