package netsuite

// QueryDef is a named extraction request: the SuiteQL text, the column
// aliases that become document properties, and the NetSuite object type tag
// the rows belong to.
type QueryDef struct {
	// ObjectType is the NetSuite record type tag, matching the translated
	// permission kinds of the access index.
	ObjectType string

	// Query is the SuiteQL text.
	Query string

	// Fields lists the column aliases carried into the indexed document, in
	// order. The first field doubles as the document title.
	Fields []string

	// GloballyVisible record types are indexed with the full active-user
	// list instead of subsidiary-scoped role grants.
	GloballyVisible bool
}

// PermissionGrantsQuery extracts one row per (employee, role permission) for
// active employees with access, including the role's subsidiary restriction.
const PermissionGrantsQuery = "SELECT e.id AS employee_id, e.firstname, e.lastname, e.email, e.entityid, r.subsidiaryrestriction AS role_subsidiary_restriction, rp.name AS permission_name, rp.permLevel AS permission_level FROM employee e JOIN employeeRolesForSearch erfs ON e.id = erfs.entity JOIN role r ON erfs.role = r.id JOIN rolePermissions rp ON r.id = rp.role WHERE e.giveaccess = 'T' AND e.isinactive = 'F' AND rp.name IN ('Bills', 'Customers', 'Estimate', 'Invoice', 'Items', 'Opportunity', 'Purchase Order', 'Sales Order', 'Vendors' ) AND rp.permLevel IS NOT NULL ORDER BY rp.name, e.lastname"

// ActiveUsersQuery extracts every employee with access, regardless of role.
const ActiveUsersQuery = "SELECT BUILTIN_RESULT.TYPE_INTEGER(employee.ID) AS ID, BUILTIN_RESULT.TYPE_STRING(employee.entityid) AS entityid, BUILTIN_RESULT.TYPE_STRING(employee.email) AS email, BUILTIN_RESULT.TYPE_BOOLEAN(employee.giveaccess) AS giveaccess FROM employee WHERE employee.giveaccess = 'T'"

// EmployeeEmailQuery extracts the active employees indexed as Glean users.
const EmployeeEmailQuery = "SELECT BUILTIN_RESULT.TYPE_INTEGER(employee.ID) AS ID, BUILTIN_RESULT.TYPE_STRING(employee.entityid) AS entityid, BUILTIN_RESULT.TYPE_STRING(employee.email) AS email, BUILTIN_RESULT.TYPE_BOOLEAN(employee.giveaccess) AS giveaccess FROM employee WHERE employee.giveaccess = 'T' AND employee.isinactive = 'F'"

// RecordQueries lists the nine record extractions in upload order.
var RecordQueries = []QueryDef{
	{
		ObjectType: "custinvc",
		Query:      "SELECT t.id AS internalid, t.tranid AS InvoiceNumber, t.otherrefnum AS PONumber, t.DueDate, t.status, CASE t.status WHEN 'A' THEN 'Pending Approval' WHEN 'B' THEN 'Open' WHEN 'C' THEN 'Paid In Full' ELSE 'Other' END AS status_name, t.entity AS customer_internal_id, customer.entityid AS customer_id, customer.altname AS netsuitecustomer, SUM(ABS(transactionLine.netamount)) AS UnPaidAmount,subsidiary.id AS subsidiary, subsidiary.name AS subsidiary_name, t.type AS transaction_type, so.transactionnumber AS sales_order_number FROM transaction t LEFT JOIN transactionLine ON transactionLine.transaction = t.id LEFT JOIN customer ON customer.id = t.entity LEFT JOIN subsidiary ON subsidiary.id = transactionLine.subsidiary LEFT JOIN transaction so ON so.id = transactionLine.createdfrom WHERE t.type = 'CustInvc' AND transactionLine.mainline = 'F' GROUP BY t.id, t.tranid, t.otherrefnum, t.duedate, t.status, t.entity, customer.entityid, customer.altname,subsidiary.id, subsidiary.name, t.type, so.transactionnumber",
		Fields:     []string{"invoicenumber", "duedate", "netsuitecustomer", "unpaidamount", "ponumber", "internalid"},
	},
	{
		ObjectType: "vendorbill",
		Query:      "SELECT vb.id AS internalid, vb.tranid AS vendorinvoicenumber, vb.transactionnumber AS VendorBillNumber, vb.duedate AS billduedate, vb.status, CASE vb.status WHEN 'B' THEN 'Open' WHEN 'C' THEN 'Paid In Full' WHEN 'A' THEN 'Pending Approval' ELSE 'Other' END AS vendorbillstatus, vb.entity AS vendor_internal_id, vendor.entityid AS vendor_id, vendor.altname AS vendor, SUM(ABS(vbl.netamount)) AS billamount, subsidiary.id AS subsidiary, subsidiary.name AS subsidiary_name, currency.name AS currency_name, vb.type AS transaction_type, po.transactionnumber AS nsponumber FROM transaction vb LEFT JOIN transactionline vbl ON vbl.transaction = vb.id LEFT JOIN vendor ON vendor.id = vb.entity LEFT JOIN subsidiary ON subsidiary.id = vbl.subsidiary LEFT JOIN transaction po ON po.id = vbl.createdfrom LEFT JOIN currency ON currency.id = vb.currency WHERE vb.type = 'VendBill' AND vbl.mainline = 'F' GROUP BY vb.id, vb.tranid, vb.transactionnumber, vb.duedate, vb.status, vb.entity, vendor.entityid, vendor.altname, subsidiary.id, subsidiary.name, currency.name, vb.type, po.transactionnumber",
		Fields:     []string{"vendorinvoicenumber", "vendor", "billamount", "nsponumber", "billduedate", "vendorbillstatus"},
	},
	{
		ObjectType: "purchord",
		Query:      "SELECT t.id AS internalid, t.tranid AS nsponumberpo, e.entityid AS vendor_name, ABS(t.foreigntotal) AS nspoamountpo, t.shipdate AS eta, t.status AS status_code, CASE t.status WHEN 'A' THEN 'Pending Supervisor Approval' WHEN 'B' THEN 'Pending Receipt' WHEN 'C' THEN 'Rejected by Supervisor' WHEN 'D' THEN 'Partially Received' WHEN 'E' THEN 'Pending Billing/Partially Received' WHEN 'F' THEN 'Pending Bill' WHEN 'G' THEN 'Fully Billed' WHEN 'H' THEN 'Closed' ELSE 'Unknown' END AS nspostatus, c.symbol AS currency, vendor.altname AS nspovendorpo, pol.subsidiary AS subsidiary FROM transaction t LEFT JOIN entity e ON t.entity = e.id LEFT JOIN currency c ON t.currency = c.id LEFT JOIN vendor ON vendor.id = t.entity LEFT JOIN transactionline pol ON pol.transaction = t.id WHERE t.type = 'PurchOrd' ORDER BY t.trandate DESC",
		Fields:     []string{"nsponumberpo", "nspovendorpo", "nspoamountpo", "nspostatus"},
	},
	{
		ObjectType: "opprtnty",
		Query:      "SELECT t.id AS internalid, t.tranid AS nsopportunitynumber, t.title AS nsoptitle, c.entityid AS customer_name, t.projectedtotal AS nsopexpectedamount, customer.altname AS nsopcustomer, tl.subsidiary AS subsidiary, CASE t.status WHEN 'A' THEN 'In Progress' WHEN 'B' THEN 'Issued Estimate' WHEN 'C' THEN 'Closed – Won' WHEN 'D' THEN 'Closed – Lost' ELSE 'Unknown' END AS nsopstatus, t.duedate AS nsopexpectedclosedate FROM transaction t LEFT JOIN entity c ON t.entity = c.id LEFT JOIN customer ON customer.id = t.entity LEFT JOIN transactionLine tl ON tl.transaction = t.id WHERE t.type = 'Opprtnty' AND tl.mainline = 'T' ORDER BY t.trandate DESC",
		Fields:     []string{"nsopportunitynumber", "nsoptitle", "nsopcustomer", "nsopexpectedamount", "nsopstatus", "nsopsalesrep", "nsopexpectedclosedate"},
	},
	{
		ObjectType: "estimate",
		Query:      "SELECT TRANSACTION.entity AS entity_id, TRANSACTION.id AS internalid, Customer.altname AS nsquotecustomer, TRANSACTION.foreigntotal AS nsquoteamount, TRANSACTION.tranid AS nsqoutenumber, employee.firstname || ' ' || employee.lastname AS nsquotesalesrep, subsidiary.id AS subsidiary, CASE TRANSACTION.status WHEN 'A' THEN 'Open' WHEN 'B' THEN 'Processed' WHEN 'C' THEN 'Closed' WHEN 'V' THEN 'Voided' WHEN 'X' THEN 'Expired' ELSE 'Other' END AS nsquotestatus, TRANSACTION.currency AS currency_id, TRANSACTION.tosubsidiary AS tosubsidiary_id FROM TRANSACTION LEFT JOIN Customer ON TRANSACTION.entity = Customer.id LEFT JOIN transactionline ebl ON ebl.transaction = TRANSACTION.id LEFT JOIN subsidiary ON subsidiary.id = ebl.subsidiary LEFT JOIN employee ON employee.id = TRANSACTION.employee WHERE TRANSACTION.TYPE IN ('Estimate') AND ebl.mainline = 'T'",
		Fields:     []string{"nsqoutenumber", "nsquotecustomer", "nsquotesalesrep", "nsquoteamount", "nsquotestatus"},
	},
	{
		ObjectType: "salesord",
		Query:      "SELECT t.id AS internalid, t.tranid AS nssonumber, e.entitytitle AS nssocustomer, t.trandate AS nssodate, ABS(t.foreigntotal) AS nssoamount, tl.subsidiary AS subsidiary, CASE t.status WHEN 'A' THEN 'Pending Approval' WHEN 'B' THEN 'Pending Fulfillment' WHEN 'C' THEN 'Partially Fulfilled' WHEN 'D' THEN 'Pending Billing/Partially Fulfilled' WHEN 'E' THEN 'Pending Billing' WHEN 'F' THEN 'Billed' WHEN 'G' THEN 'Closed' ELSE 'Unknown' END AS nssostatus FROM transaction t LEFT JOIN transactionline tl ON tl.transaction = t.id AND tl.mainline = 'T' LEFT JOIN entity e ON t.entity = e.id WHERE t.type = 'SalesOrd' ORDER BY t.trandate DESC",
		Fields:     []string{"nssonumber", "nssodate", "nssoamount", "nssostatus"},
	},
	{
		ObjectType:      "item",
		Query:           "SELECT BUILTIN_RESULT.TYPE_INTEGER(item.ID) AS internalid, BUILTIN_RESULT.TYPE_STRING(item.itemid) AS nsitemname, BUILTIN_RESULT.TYPE_STRING(item.itemtype) AS itemtype, BUILTIN_RESULT.TYPE_STRING(item.description) AS itemdesc FROM item",
		Fields:          []string{"nsitemname", "itemtype", "itemdesc"},
		GloballyVisible: true,
	},
	{
		ObjectType: "vendor",
		Query:      "SELECT BUILTIN_RESULT.TYPE_INTEGER(Vendor.ID) AS internalid, BUILTIN_RESULT.TYPE_STRING(NVL(Vendor.companyname, 'N/A')) AS nsvendorname, BUILTIN_RESULT.TYPE_INTEGER(NVL(VendorSubsidiaryRelationship.subsidiary, -1)) AS subsidiary, BUILTIN_RESULT.TYPE_STRING(NVL(currency.symbol, '') || ' ' || TO_CHAR(NVL(Vendor.balanceprimary, 0))) AS nsvendorbalance, BUILTIN_RESULT.TYPE_STRING(NVL(currency.symbol, '') || ' ' || TO_CHAR(NVL(Vendor.unbilledordersprimary, 0))) AS nsvendorunbillamt, BUILTIN_RESULT.TYPE_STRING(NVL(currency.symbol, 'N/A')) AS vendorcurrency FROM Vendor LEFT JOIN VendorSubsidiaryRelationship ON Vendor.ID = VendorSubsidiaryRelationship.entity LEFT JOIN currency ON Vendor.currency = currency.id",
		Fields:     []string{"nsvendorname", "nsvendorbalance", "nsvendorunbillamt"},
	},
	{
		ObjectType: "custjob",
		Query:      "SELECT BUILTIN_RESULT.TYPE_INTEGER(Customer.ID) AS internalid, BUILTIN_RESULT.TYPE_INTEGER(CustomerSubsidiaryRelationship.subsidiary) AS subsidiary, BUILTIN_RESULT.TYPE_STRING(Subsidiary.name) AS nscustomersubsidiary, BUILTIN_RESULT.TYPE_STRING(Customer.entityid || ' - ' || Customer.companyname) AS nscustomername, BUILTIN_RESULT.TYPE_STRING(COALESCE(currency.symbol, 'N/A') || ' ' || TO_CHAR(NVL(Customer.overduebalancesearch, 0))) AS nscustomeroverdue FROM Customer LEFT JOIN CustomerSubsidiaryRelationship ON Customer.ID = CustomerSubsidiaryRelationship.entity LEFT JOIN Subsidiary ON CustomerSubsidiaryRelationship.subsidiary = Subsidiary.ID LEFT JOIN Currency ON Customer.currency = Currency.ID",
		Fields:     []string{"nscustomername", "nscustomersubsidiary", "nscustomeroverdue"},
	},
}
