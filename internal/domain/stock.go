package domain

// StockInfo representa uma ação listada no diretório TaiwanStockInfo
type StockInfo struct {
	StockID          string `json:"stock_id"`
	StockName        string `json:"stock_name"`
	IndustryCategory string `json:"industry_category,omitempty"`
	Type             string `json:"type,omitempty"`
	Date             string `json:"date,omitempty"`
}

// DisplayName retorna o nome no formato exibido no título da página
func (s StockInfo) DisplayName() string {
	if s.StockName == "" {
		return s.StockID
	}
	return s.StockName
}
