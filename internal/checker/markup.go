package checker

import (
	"bytes"
	"html/template"
	"net/url"

	"bookings/internal/domain"
)

var datesFormTmpl = template.Must(template.New("dates").Parse(`<form id="{{.FormID}}" action="" method="post" novalidate class="needs-validation">
  <div class="row">
    <div class="col">
      <div class="row" id="reservation-dates-modal">
        <div class="col">
          <input disabled required class="form-control" type="text" name="{{.Start}}" id="{{.Start}}" placeholder="Arrival">
        </div>
        <div class="col">
          <input disabled required class="form-control" type="text" name="{{.End}}" id="{{.End}}" placeholder="Departure">
        </div>
      </div>
    </div>
  </div>
</form>`))

var availableTmpl = template.Must(template.New("available").Parse(
	`<p>{{.Message}}</p><p><a href="{{.Link}}" class="btn btn-primary">Book now!</a></p>`))

// BookingURL links to the booking page for an available room. Values are
// query-escaped and kept in id, s, e order.
func BookingURL(r domain.AvailabilityResult) string {
	return "/book-room?id=" + url.QueryEscape(r.RoomID) +
		"&s=" + url.QueryEscape(r.StartDate) +
		"&e=" + url.QueryEscape(r.EndDate)
}

func datesFormHTML(start, end string) (template.HTML, error) {
	var buf bytes.Buffer
	err := datesFormTmpl.Execute(&buf, struct{ FormID, Start, End string }{FormID, start, end})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func availableHTML(r domain.AvailabilityResult) (template.HTML, error) {
	var buf bytes.Buffer
	err := availableTmpl.Execute(&buf, struct{ Message, Link string }{AvailableMessage, BookingURL(r)})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
