package notification

import (
	"fmt"
	"strings"

	"logistics-requests/constants"
	"logistics-requests/httpServices/telegram"
	shipmentModel "logistics-requests/models/shipment"
	"logistics-requests/services/lifecycle"
)

var categoryLabels = map[shipmentModel.Category]string{
	shipmentModel.CategoryAstana:    "По Астане",
	shipmentModel.CategoryIntercity: "Межгород",
}

func status(s shipmentModel.Status) string {
	return lifecycle.DisplayName(s, constants.LocaleRU)
}

func line(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "<b>%s:</b> %s\n", label, telegram.Escape(value))
}

func formatCreated(r *shipmentModel.ShipmentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆕 <b>Новая заявка %s</b>\n\n", telegram.Escape(r.RequestNumber))
	line(&b, "Тип", categoryLabels[r.Category])
	line(&b, "Клиент", r.ClientName)
	line(&b, "Телефон", r.ClientPhone)
	line(&b, "Откуда", r.PickupAddress)
	line(&b, "Куда", r.DeliveryAddress)
	if r.Category == shipmentModel.CategoryIntercity {
		line(&b, "Маршрут", strings.TrimSpace(r.FromCity+" → "+r.ToCity))
	}
	line(&b, "Груз", r.CargoName)
	if r.CargoWeightKg != nil {
		line(&b, "Вес, кг", r.CargoWeightKg.String())
	}
	line(&b, "Комментарий", r.Comment)
	return strings.TrimRight(b.String(), "\n")
}

func formatStatusChanged(r *shipmentModel.ShipmentRequest, from, to shipmentModel.Status, changedBy string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔄 <b>Заявка %s</b>\n\n", telegram.Escape(r.RequestNumber))
	fmt.Fprintf(&b, "Статус: %s → <b>%s</b>\n", telegram.Escape(status(from)), telegram.Escape(status(to)))
	line(&b, "Изменил", changedBy)
	if r.PriceKzt != nil {
		line(&b, "Стоимость, ₸", r.PriceKzt.StringFixed(2))
	}
	line(&b, "Транспорт", r.TransportInfo)
	return strings.TrimRight(b.String(), "\n")
}

func formatDeleted(r *shipmentModel.ShipmentRequest, deletedBy string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🗑 <b>Заявка %s удалена</b>\n", telegram.Escape(r.RequestNumber))
	line(&b, "Удалил", deletedBy)
	return strings.TrimRight(b.String(), "\n")
}
